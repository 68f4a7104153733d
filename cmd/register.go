package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type registerCmd struct {
	userID string
	email  string
	pass   string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new client account" }
func (*registerCmd) Usage() string {
	return `bbo register -id <user_id> -email <email> -pass <password>

  Creates a client account with credentials only. The client fills the
  rest of its profile later with the inquiry command.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "id", "", "User id the client will log in with.")
	f.StringVar(&c.email, "email", "", "Contact email, must be unique.")
	f.StringVar(&c.pass, "pass", "", "Password, 6 characters minimum.")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	res := s.RegisterClient(c.userID, c.email, c.pass)
	fmt.Println(res.Message)
	if !res.Success {
		return subcommands.ExitFailure
	}
	return save(s)
}
