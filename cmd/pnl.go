package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/belreon/backoffice"
	"github.com/belreon/backoffice/renderer"
	"github.com/google/subcommands"
)

type pnlCmd struct{}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "show the profit & loss statement" }
func (*pnlCmd) Usage() string {
	return `bbo pnl

  Shows the active profit & loss entries with total revenue, total
  expenses and net profit.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionFinancials)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Statement(s, backoffice.ProfitAndLoss))
	return subcommands.ExitSuccess
}

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the balance sheet" }
func (*balanceCmd) Usage() string {
	return `bbo balance

  Shows the active balance sheet entries with total assets and total
  liabilities.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionFinancials)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Statement(s, backoffice.BalanceSheet))
	return subcommands.ExitSuccess
}

type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "show the entries of one transaction" }
func (*txCmd) Usage() string {
	return `bbo tx <transaction_id>

  Shows every statement entry sharing the given transaction id, deleted
  entries included.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	s, _, err := sectionStore(backoffice.SectionFinancials)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Transaction(s, f.Arg(0)))
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "show the chart of accounts with balances" }
func (*accountsCmd) Usage() string {
	return `bbo accounts

  Shows the chart of accounts, with the net ledger balance of every
  account.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionFinancials)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Accounts(s))
	return subcommands.ExitSuccess
}
