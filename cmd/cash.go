package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/belreon/backoffice"
	"github.com/belreon/backoffice/date"
	"github.com/belreon/backoffice/renderer"
	"github.com/google/subcommands"
)

type cashCmd struct {
	add         bool
	day         string
	description string
	vendor      string
	flow        string
	amount      float64
	currency    string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "show or extend the cash book" }
func (*cashCmd) Usage() string {
	return `bbo cash [-add -amount <amount> -type <Inflow|Outflow> [flags]]

  Without flags, shows the cash book with running totals. With -add,
  appends one cash row. The cash book is independent from the
  double-entry statements.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Append a cash row.")
	f.StringVar(&c.day, "d", "", "Row date (YYYY-MM-DD), defaults to today.")
	f.StringVar(&c.description, "description", "", "Free-text description.")
	f.StringVar(&c.vendor, "vendor", "", "Client or vendor name.")
	f.StringVar(&c.flow, "type", string(backoffice.Inflow), "Flow direction: Inflow or Outflow.")
	f.Float64Var(&c.amount, "amount", 0, "Signed amount.")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code.")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionTransactions)
	if err != nil {
		return fail(err)
	}

	if !c.add {
		printMarkdown(renderer.CashBook(s))
		return subcommands.ExitSuccess
	}

	day := date.Today()
	if c.day != "" {
		if day, err = date.Parse(c.day); err != nil {
			return fail(err)
		}
	}
	t := s.AddCashTransaction(backoffice.CashTransaction{
		Date:         day,
		Description:  c.description,
		ClientVendor: c.vendor,
		Type:         backoffice.FlowType(c.flow),
		Amount:       backoffice.M(c.amount, c.currency),
	})
	fmt.Printf("Added cash transaction %d.\n", t.ID)
	return save(s)
}
