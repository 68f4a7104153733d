package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/belreon/backoffice"
	"github.com/belreon/backoffice/renderer"
	"github.com/google/subcommands"
)

type usersCmd struct {
	add    bool
	name   string
	pass   string
	role   string
	nav    string
	status string
	id     int
}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list or manage back-office accounts" }
func (*usersCmd) Usage() string {
	return `bbo users [-add -name <username> -pass <password> [-role <role>] [-nav <sections>]]
bbo users -id <id> [-status <status>] [-nav <sections>] [-pass <password>]

  Without flags, lists the active back-office accounts and the sections
  each one can see. With -add, creates an account. With -id, updates an
  existing account; an empty -pass keeps the current password. The -nav
  value is a comma-separated list of section routes, or "all".
`
}

func (c *usersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new account.")
	f.IntVar(&c.id, "id", 0, "Account id to update.")
	f.StringVar(&c.name, "name", "", "Username.")
	f.StringVar(&c.pass, "pass", "", "Password.")
	f.StringVar(&c.role, "role", string(backoffice.RoleEmployee), "Role: Primary Admin or Employee.")
	f.StringVar(&c.nav, "nav", "", "Comma-separated section routes, or \"all\".")
	f.StringVar(&c.status, "status", "", "Account status: Active or Disabled.")
}

func navList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (c *usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionUsers)
	if err != nil {
		return fail(err)
	}

	switch {
	case c.add:
		u := s.AddUser(backoffice.User{
			Username:       c.name,
			Password:       c.pass,
			Role:           backoffice.Role(c.role),
			NavPermissions: navList(c.nav),
			Status:         backoffice.UserActive,
		})
		fmt.Printf("Created user %d (%s).\n", u.ID, u.Username)
		return save(s)

	case c.id != 0:
		u, ok := s.User(c.id)
		if !ok {
			return fail(fmt.Errorf("no user with id %d", c.id))
		}
		if c.pass != "" {
			u.Password = c.pass
		}
		if c.status != "" {
			u.Status = backoffice.UserStatus(c.status)
		}
		if c.nav != "" {
			u.NavPermissions = navList(c.nav)
		}
		if err := s.UpdateUser(u); err != nil {
			return fail(err)
		}
		fmt.Printf("Updated user %d.\n", c.id)
		return save(s)

	default:
		printMarkdown(renderer.Users(s))
		return subcommands.ExitSuccess
	}
}
