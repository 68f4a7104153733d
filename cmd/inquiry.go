package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/belreon/backoffice"
	"github.com/google/subcommands"
)

type inquiryCmd struct {
	inq backoffice.Inquiry
}

func (*inquiryCmd) Name() string     { return "inquiry" }
func (*inquiryCmd) Synopsis() string { return "submit or update the logged-in client's inquiry" }
func (*inquiryCmd) Usage() string {
	return `bbo -u <user_id> -p <password> -realm client inquiry [flags]

  Fills the profile of the logged-in client and moves a fresh account to
  "Pending Approval". The submission date is stamped on the first
  inquiry only.
`
}

func (c *inquiryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inq.Email, "email", "", "Contact email.")
	f.StringVar(&c.inq.CompanyName, "company", "", "Company name.")
	f.StringVar(&c.inq.ContactPerson, "contact", "", "Contact person.")
	f.StringVar(&c.inq.Phone, "phone", "", "Phone number.")
	f.StringVar(&c.inq.Address, "address", "", "Postal address.")
	f.StringVar(&c.inq.Service, "service", "", "Requested stock or service.")
	f.StringVar(&c.inq.ProjectDescription, "description", "", "Project description.")
	f.StringVar(&c.inq.Budget, "budget", "", "Budget, free text.")
	f.StringVar(&c.inq.Currency, "currency", "", "Budget currency.")
	f.StringVar(&c.inq.Deadline, "deadline", "", "Deadline, free text.")
}

func (c *inquiryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail(err)
	}
	actor, ok := s.CurrentActor().(backoffice.ClientActor)
	if !ok {
		return fail(fmt.Errorf("client login required, pass -u <user_id> -p <password> -realm client"))
	}
	if err := s.SubmitInquiry(actor.Client.ID, c.inq); err != nil {
		return fail(err)
	}
	fmt.Println("Inquiry submitted.")
	return save(s)
}
