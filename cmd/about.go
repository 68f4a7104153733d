package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/belreon/backoffice"
	"github.com/belreon/backoffice/renderer"
	"github.com/google/subcommands"
)

type aboutCmd struct {
	heading   string
	paragraph string
}

func (*aboutCmd) Name() string     { return "about" }
func (*aboutCmd) Synopsis() string { return "show or edit the about-us content" }
func (*aboutCmd) Usage() string {
	return `bbo about [-heading <text>] [-paragraph <text>]

  Without flags, shows the about-us section with its active feature
  cards. With flags, rewrites the heading or paragraph.
`
}

func (c *aboutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.heading, "heading", "", "New section heading.")
	f.StringVar(&c.paragraph, "paragraph", "", "New section paragraph.")
}

func (c *aboutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionAppModify)
	if err != nil {
		return fail(err)
	}

	if c.heading == "" && c.paragraph == "" {
		printMarkdown(renderer.AboutUs(s))
		return subcommands.ExitSuccess
	}

	content := s.AboutUs()
	if c.heading != "" {
		content.Heading = c.heading
	}
	if c.paragraph != "" {
		content.Paragraph = c.paragraph
	}
	s.UpdateAboutUs(content)
	fmt.Println("About-us content updated.")
	return save(s)
}

type settingsCmd struct {
	name  string
	logo  string
	theme string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the site settings" }
func (*settingsCmd) Usage() string {
	return `bbo settings [-name <company>] [-logo <image file>] [-theme <light|dark>]

  Without flags, shows the current settings. The -logo file is stored
  inline as a data URL.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Company name.")
	f.StringVar(&c.logo, "logo", "", "Path to the company logo image.")
	f.StringVar(&c.theme, "theme", "", "Default theme: light or dark.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := sectionStore(backoffice.SectionSettings)
	if err != nil {
		return fail(err)
	}

	if c.name == "" && c.logo == "" && c.theme == "" {
		settings := s.Settings()
		fmt.Printf("Company: %s\nTheme: %s\n", settings.CompanyName, settings.Theme)
		return subcommands.ExitSuccess
	}

	if c.name != "" {
		s.SetCompanyName(c.name)
	}
	if c.logo != "" {
		logo, err := attachImage(c.logo)
		if err != nil {
			return fail(err)
		}
		s.SetCompanyLogo(logo)
	}
	if c.theme != "" {
		if err := s.SetTheme(c.theme); err != nil {
			return fail(err)
		}
	}
	fmt.Println("Settings updated.")
	return save(s)
}
