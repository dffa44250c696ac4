package main

import (
	"fmt"

	"github.com/sghaida/patterns/internal/docs"
)

// ExplainCmd implements the 'explain' command.
type ExplainCmd struct {
	Name string `arg:"" help:"Scenario name"`
	HTML bool   `name:"html" help:"Render the description as HTML"`
}

func (e *ExplainCmd) Run(g *Global, _ *CLI) error {
	render := docs.Describe
	if e.HTML {
		render = docs.HTML
	}
	out, err := render(e.Name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(g.Stdout, out)
	return err
}
