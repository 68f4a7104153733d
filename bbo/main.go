// Command bbo is the command-line back office of the Belreon site.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/belreon/backoffice/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It exits
// the process when invoked by the shell's completion hook.
func completion() {
	sub := func() *complete.Command { return &complete.Command{} }
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"register": sub(),
			"inquiry":  sub(),
			"clients":  sub(),
			"users":    sub(),
			"post":     sub(),
			"pnl":      sub(),
			"balance":  sub(),
			"tx":       sub(),
			"cash":     sub(),
			"accounts": sub(),
			"stocks":   sub(),
			"news":     sub(),
			"about":    sub(),
			"settings": sub(),
			"delete":   sub(),
			"trash":    sub(),
			"restore":  sub(),
			"purge":    sub(),
			"export":   sub(),
			"import":   sub(),
			"topic":    sub(),
		},
		Flags: map[string]complete.Predictor{
			"store-file": predict.Files("*.jsonl"),
			"u":          predict.Something,
			"p":          predict.Nothing,
			"realm":      predict.Set{"admin", "client"},
		},
	}
	c.Complete("bbo")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
