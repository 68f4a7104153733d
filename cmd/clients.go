package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/belreon/backoffice"
	"github.com/belreon/backoffice/renderer"
	"github.com/google/subcommands"
)

type clientsCmd struct {
	id     int
	status string
}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list clients, show one, or change a project status" }
func (*clientsCmd) Usage() string {
	return `bbo clients [-id <id> [-status <status>]]

  Without flags, lists the active client roster. With -id, shows the
  full record of one client. With -id and -status, moves that client's
  project to the given status (New, Pending Approval, In Progress,
  Completed, Rejected).
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Client id to show or update.")
	f.StringVar(&c.status, "status", "", "New project status for -id.")
}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionClients)
	if err != nil {
		return fail(err)
	}

	if c.id == 0 {
		printMarkdown(renderer.Clients(s))
		return subcommands.ExitSuccess
	}

	if c.status != "" {
		status, err := backoffice.ParseProjectStatus(c.status)
		if err != nil {
			return fail(err)
		}
		if err := s.UpdateClientStatus(c.id, status); err != nil {
			return fail(err)
		}
		fmt.Printf("Client %d moved to %s.\n", c.id, status)
		return save(s)
	}

	client, ok := s.Client(c.id)
	if !ok {
		return fail(fmt.Errorf("no client with id %d", c.id))
	}
	printMarkdown(renderer.ClientDetail(&client))
	return subcommands.ExitSuccess
}
