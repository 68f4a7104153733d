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

type newsCmd struct {
	add     bool
	title   string
	summary string
	day     string
	url     string
	image   string
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "list or publish market news" }
func (*newsCmd) Usage() string {
	return `bbo news [-add -title <title> -summary <text> [flags]]

  Without flags, lists the published news cards. With -add, publishes a
  new card; -image attaches a png, jpeg or webp file stored inline.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Publish a news card.")
	f.StringVar(&c.title, "title", "", "Card title.")
	f.StringVar(&c.summary, "summary", "", "Card summary.")
	f.StringVar(&c.day, "d", "", "Publication date (YYYY-MM-DD), defaults to today.")
	f.StringVar(&c.url, "url", "", "External article link.")
	f.StringVar(&c.image, "image", "", "Path to an image file to attach.")
}

func (c *newsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionNews)
	if err != nil {
		return fail(err)
	}

	if !c.add {
		printMarkdown(renderer.News(s))
		return subcommands.ExitSuccess
	}

	day := date.Today()
	if c.day != "" {
		if day, err = date.Parse(c.day); err != nil {
			return fail(err)
		}
	}
	img, err := attachImage(c.image)
	if err != nil {
		return fail(err)
	}
	n := s.AddNews(backoffice.NewsItem{
		Title:    c.title,
		Summary:  c.summary,
		Date:     day,
		ImageURL: img,
		URL:      c.url,
	})
	fmt.Printf("Published news %d.\n", n.ID)
	return save(s)
}
