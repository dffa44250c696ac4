package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sghaida/patterns/catalog"
	"github.com/sghaida/patterns/demo"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Category string `short:"c" help:"Only list one category (behavioral, creational or structural)"`
}

func (l *ListCmd) Run(g *Global, _ *CLI) error {
	reg := catalog.New()

	var scenarios []demo.Scenario
	if l.Category != "" {
		c := demo.Category(l.Category)
		if !c.Valid() {
			return fmt.Errorf("unknown category %q", l.Category)
		}
		scenarios = reg.ByCategory(c)
	} else {
		for _, name := range reg.Names() {
			scenarios = append(scenarios, reg.MustGet(name))
		}
	}

	tw := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tCATEGORY\tSUMMARY")
	for _, s := range scenarios {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name(), catalog.DisplayName(s.Name()), s.Category(), s.Summary())
	}
	return tw.Flush()
}
