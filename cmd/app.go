// Package cmd implements the CLI application to manage the back office.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/belreon/backoffice"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "access")
	c.Register(&inquiryCmd{}, "access")

	c.Register(&clientsCmd{}, "clients")
	c.Register(&usersCmd{}, "clients")

	c.Register(&postCmd{}, "financials")
	c.Register(&pnlCmd{}, "financials")
	c.Register(&balanceCmd{}, "financials")
	c.Register(&txCmd{}, "financials")
	c.Register(&cashCmd{}, "financials")
	c.Register(&accountsCmd{}, "financials")

	c.Register(&stocksCmd{}, "content")
	c.Register(&newsCmd{}, "content")
	c.Register(&aboutCmd{}, "content")
	c.Register(&settingsCmd{}, "content")

	c.Register(&deleteCmd{}, "trash")
	c.Register(&trashCmd{}, "trash")
	c.Register(&restoreCmd{}, "trash")
	c.Register(&purgeCmd{}, "trash")

	c.Register(&exportCmd{}, "store")
	c.Register(&importCmd{}, "store")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "backoffice.jsonl", "Path to the store snapshot file (JSONL format)")
var username = flag.String("u", "", "Identity to log in as (username for admin, user id for client)")
var password = flag.String("p", "", "Password for -u")
var realm = flag.String("realm", "admin", "Login realm: admin or client")

// DecodeStoreFile loads the store from the app snapshot file.
func DecodeStoreFile() (s *backoffice.Store, err error) {
	f, err := os.Open(*storeFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, store snapshot does not exist, starting from the demo dataset instead")
		return backoffice.NewDemoStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open store file %q: %w", *storeFile, err)
	}
	defer f.Close()
	return backoffice.DecodeStore(f)
}

// EncodeStoreFile writes the store back into the app snapshot file.
func EncodeStoreFile(s *backoffice.Store) error {
	f, err := os.Create(*storeFile)
	if err != nil {
		return fmt.Errorf("cannot create store file %q: %w", *storeFile, err)
	}
	if err := backoffice.EncodeStore(f, s); err != nil {
		f.Close()
		return fmt.Errorf("cannot write store file %q: %w", *storeFile, err)
	}
	return f.Close()
}

// openStore loads the store and, when -u is given, logs that identity in.
func openStore() (*backoffice.Store, error) {
	s, err := DecodeStoreFile()
	if err != nil {
		return nil, err
	}
	if *username != "" {
		if !s.Login(*username, *password, backoffice.Realm(*realm)) {
			return nil, fmt.Errorf("invalid credentials for %q in realm %q", *username, *realm)
		}
	}
	return s, nil
}

// adminStore loads the store and requires a logged-in back-office user.
func adminStore() (*backoffice.Store, backoffice.User, error) {
	s, err := openStore()
	if err != nil {
		return nil, backoffice.User{}, err
	}
	admin, ok := s.CurrentActor().(backoffice.Admin)
	if !ok {
		return nil, backoffice.User{}, fmt.Errorf("admin login required, pass -u <username> -p <password>")
	}
	return s, admin.User, nil
}

// sectionStore loads the store and requires an admin allowed to view the given section.
func sectionStore(section backoffice.Section) (*backoffice.Store, backoffice.User, error) {
	s, u, err := adminStore()
	if err != nil {
		return nil, backoffice.User{}, err
	}
	if !backoffice.CanView(u, section) {
		return nil, backoffice.User{}, fmt.Errorf("user %q has no access to %s", u.Username, section)
	}
	return s, u, nil
}

// save persists the store and reports the outcome as an exit status.
func save(s *backoffice.Store) subcommands.ExitStatus {
	if err := EncodeStoreFile(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// fail prints the error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
