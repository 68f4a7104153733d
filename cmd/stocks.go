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

// attachImage reads an image file and returns it as an inline data URL.
func attachImage(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open image %q: %w", path, err)
	}
	defer f.Close()
	return backoffice.ImageDataURL(f)
}

type stocksCmd struct {
	add       bool
	name      string
	ticker    string
	desc      string
	current   float64
	target    float64
	intrinsic float64
	ratios    string
	currency  string
	demo      bool
	image     string
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list or publish stock recommendations" }
func (*stocksCmd) Usage() string {
	return `bbo stocks [-add -name <name> -ticker <ticker> [flags]]

  Without flags, lists the published recommendations. With -add,
  publishes a new one; -image attaches a png, jpeg or webp file stored
  inline on the record.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Publish a new recommendation.")
	f.StringVar(&c.name, "name", "", "Company name.")
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol.")
	f.StringVar(&c.desc, "description", "", "Free-text description.")
	f.Float64Var(&c.current, "current", 0, "Current price.")
	f.Float64Var(&c.target, "target", 0, "Target price.")
	f.Float64Var(&c.intrinsic, "intrinsic", 0, "Intrinsic value.")
	f.StringVar(&c.ratios, "ratios", "", "Key ratios, free text.")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code for the display prices.")
	f.BoolVar(&c.demo, "demo", false, "Mark the recommendation as a demo, visible without login.")
	f.StringVar(&c.image, "image", "", "Path to an image file to attach.")
}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionAppModify)
	if err != nil {
		return fail(err)
	}

	if !c.add {
		printMarkdown(renderer.Stocks(s))
		return subcommands.ExitSuccess
	}

	img, err := attachImage(c.image)
	if err != nil {
		return fail(err)
	}
	st := s.AddStock(backoffice.Stock{
		Name:           c.name,
		Ticker:         c.ticker,
		Description:    c.desc,
		ImageURL:       img,
		CurrentPrice:   c.current,
		TargetPrice:    c.target,
		IntrinsicValue: c.intrinsic,
		Ratios:         c.ratios,
		Currency:       c.currency,
		IsDemo:         c.demo,
	})
	fmt.Printf("Published stock %d (%s).\n", st.ID, st.Ticker)
	return save(s)
}
