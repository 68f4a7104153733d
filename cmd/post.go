package cmd

import (
	"context"
	"flag"

	"github.com/belreon/backoffice"
	"github.com/belreon/backoffice/date"
	"github.com/belreon/backoffice/renderer"
	"github.com/google/subcommands"
)

type postCmd struct {
	kind        string
	day         string
	description string
	amount      float64
	currency    string
	revenue     string
	expense     string
	from        string
	to          string
}

func (*postCmd) Name() string     { return "post" }
func (*postCmd) Synopsis() string { return "post a business transaction to the statements" }
func (*postCmd) Usage() string {
	return `bbo post -kind <kind> -amount <amount> -description <text> [flags]

  Expands one business transaction into balanced statement entries
  sharing a single transaction id. The kind decides which accounts are
  required:

    income    -revenue <account> -to <asset account>
    expense   -expense <account> -from <asset account>
    advance   -to <asset account>         (credits Unearned Revenue)
    transfer  -from <asset> -to <asset>

  The amount is always given positive; signs are derived from the kind.
`
}

func (c *postCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Transaction kind: income, expense, advance or transfer.")
	f.StringVar(&c.day, "d", "", "Transaction date (YYYY-MM-DD), defaults to today.")
	f.StringVar(&c.description, "description", "", "Free-text description.")
	f.Float64Var(&c.amount, "amount", 0, "Positive amount.")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code.")
	f.StringVar(&c.revenue, "revenue", "", "Revenue account (income).")
	f.StringVar(&c.expense, "expense", "", "Expense account (expense).")
	f.StringVar(&c.from, "from", "", "Source asset account (expense, transfer).")
	f.StringVar(&c.to, "to", "", "Destination asset account (income, advance, transfer).")
}

func (c *postCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionFinancials)
	if err != nil {
		return fail(err)
	}

	kind, err := backoffice.ParseTransactionKind(c.kind)
	if err != nil {
		return fail(err)
	}
	var day date.Date
	if c.day != "" {
		if day, err = date.Parse(c.day); err != nil {
			return fail(err)
		}
	}

	entries, err := s.PostTransaction(backoffice.Posting{
		Kind:           kind,
		Date:           day,
		Description:    c.description,
		Amount:         backoffice.M(c.amount, c.currency),
		RevenueAccount: c.revenue,
		ExpenseAccount: c.expense,
		FromAccount:    c.from,
		ToAccount:      c.to,
	})
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.Transaction(s, entries[0].TransactionID))
	return save(s)
}
