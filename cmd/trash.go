package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/belreon/backoffice"
	"github.com/belreon/backoffice/renderer"
	"github.com/google/subcommands"
)

// kindAndID parses the positional <kind> <id> pair shared by the trash
// lifecycle commands.
func kindAndID(f *flag.FlagSet) (backoffice.Kind, int, error) {
	if f.NArg() != 2 {
		return "", 0, fmt.Errorf("expected <kind> <id>, kinds are %v", backoffice.Kinds())
	}
	kind, err := backoffice.ParseKind(f.Arg(0))
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		return "", 0, fmt.Errorf("invalid id %q: %w", f.Arg(1), err)
	}
	return kind, id, nil
}

type trashCmd struct{}

func (*trashCmd) Name() string     { return "trash" }
func (*trashCmd) Synopsis() string { return "show the trashed records visible to the logged-in user" }
func (*trashCmd) Usage() string {
	return `bbo trash

  Shows every trashed record the logged-in user may see, grouped by
  kind. Sub-sections are gated by the same permissions as the
  dashboard navigation.
`
}

func (c *trashCmd) SetFlags(f *flag.FlagSet) {}

func (c *trashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, u, err := sectionStore(backoffice.SectionTrash)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Trash(s, u))
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	txn string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "move a record to the trash" }
func (*deleteCmd) Usage() string {
	return `bbo delete <kind> <id>
bbo delete -txn <transaction_id>

  Soft-deletes one record, or every entry of one financial transaction.
  The record disappears from all listings but keeps its data; restore
  brings it back unchanged. The deletion is attributed to the logged-in
  user.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txn, "txn", "", "Financial transaction id to delete instead of a record.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionTrash)
	if err != nil {
		return fail(err)
	}

	if c.txn != "" {
		if err := s.DeleteFinancialTransaction(c.txn); err != nil {
			return fail(err)
		}
		fmt.Printf("Transaction %s moved to trash.\n", c.txn)
		return save(s)
	}

	kind, id, err := kindAndID(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := s.Delete(kind, id); err != nil {
		return fail(err)
	}
	fmt.Printf("%s %d moved to trash.\n", kind, id)
	return save(s)
}

type restoreCmd struct {
	txn string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "restore a trashed record" }
func (*restoreCmd) Usage() string {
	return `bbo restore <kind> <id>
bbo restore -txn <transaction_id>

  Brings a trashed record back to its active state, exactly as it was
  before deletion.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txn, "txn", "", "Financial transaction id to restore instead of a record.")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionTrash)
	if err != nil {
		return fail(err)
	}

	if c.txn != "" {
		if err := s.Ledger().RestoreTransaction(c.txn); err != nil {
			return fail(err)
		}
		fmt.Printf("Transaction %s restored.\n", c.txn)
		return save(s)
	}

	kind, id, err := kindAndID(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := s.Restore(kind, id); err != nil {
		return fail(err)
	}
	fmt.Printf("%s %d restored.\n", kind, id)
	return save(s)
}

type purgeCmd struct {
	txn string
}

func (*purgeCmd) Name() string     { return "purge" }
func (*purgeCmd) Synopsis() string { return "permanently remove a trashed record" }
func (*purgeCmd) Usage() string {
	return `bbo purge <kind> <id>
bbo purge -txn <transaction_id>

  Permanently removes one record. There is no way back; active records
  are purged just the same as trashed ones.
`
}

func (c *purgeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txn, "txn", "", "Financial transaction id to purge instead of a record.")
}

func (c *purgeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionTrash)
	if err != nil {
		return fail(err)
	}

	if c.txn != "" {
		if err := s.Ledger().PurgeTransaction(c.txn); err != nil {
			return fail(err)
		}
		fmt.Printf("Transaction %s permanently removed.\n", c.txn)
		return save(s)
	}

	kind, id, err := kindAndID(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := s.Purge(kind, id); err != nil {
		return fail(err)
	}
	fmt.Printf("%s %d permanently removed.\n", kind, id)
	return save(s)
}
