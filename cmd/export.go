package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/belreon/backoffice"
	"github.com/google/subcommands"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export clients or a statement as a CSV data URL" }
func (*exportCmd) Usage() string {
	return `bbo export (clients|pnl|balance) [-o <file>]

  Produces the same data:text/csv download the dashboard offers and
  prints it, or writes it to -o. The payload keeps the site's wire
  format as-is.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Write the data URL to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one of clients, pnl, balance.")
		return subcommands.ExitUsageError
	}

	var export backoffice.CSVExport
	switch f.Arg(0) {
	case "clients":
		s, _, err := sectionStore(backoffice.SectionClients)
		if err != nil {
			return fail(err)
		}
		export = s.ExportClientsCSV()
	case "pnl":
		s, _, err := sectionStore(backoffice.SectionFinancials)
		if err != nil {
			return fail(err)
		}
		export = s.ExportStatementCSV(backoffice.ProfitAndLoss)
	case "balance":
		s, _, err := sectionStore(backoffice.SectionFinancials)
		if err != nil {
			return fail(err)
		}
		export = s.ExportStatementCSV(backoffice.BalanceSheet)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	if c.out != "" {
		if err := os.WriteFile(c.out, []byte(export.URI), 0644); err != nil {
			return fail(err)
		}
		fmt.Printf("Wrote %s as %s.\n", export.Filename, c.out)
		return subcommands.ExitSuccess
	}
	fmt.Println(export.URI)
	return subcommands.ExitSuccess
}

type importCmd struct {
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import clients from a foreign JSON export" }
func (*importCmd) Usage() string {
	return `bbo import [-path <jsonpath>] <file>

  Reads a JSON file and appends the client records found at the given
  jsonpath (default "$"). Records without an email are skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "$", "jsonpath to the client list inside the file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import.")
		return subcommands.ExitUsageError
	}
	s, _, err := sectionStore(backoffice.SectionClients)
	if err != nil {
		return fail(err)
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	count, err := s.ImportClients(file, c.path)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d clients.\n", count)
	return save(s)
}
