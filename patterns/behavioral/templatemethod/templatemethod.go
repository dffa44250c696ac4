// Package templatemethod fixes the order of a game's steps in Play while
// each game supplies the steps themselves.
package templatemethod

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// Game is the set of steps a concrete game fills in.
type Game interface {
	Initialize()
	StartPlay()
	EndPlay()
}

// Play is the template: initialize, start, end.
func Play(g Game) {
	g.Initialize()
	g.StartPlay()
	g.EndPlay()
}

// sport prints the standard messages for a named game.
type sport struct {
	name string
	out  io.Writer
}

func (s sport) Initialize() { fmt.Fprintf(s.out, "%s Game Initialized! Start playing.\n", s.name) }
func (s sport) StartPlay()  { fmt.Fprintf(s.out, "%s Game Started. Enjoy the game!\n", s.name) }
func (s sport) EndPlay()    { fmt.Fprintf(s.out, "%s Game Finished!\n", s.name) }

// Cricket is a Game printing cricket lines.
type Cricket struct{ sport }

// NewCricket returns a cricket game printing to out.
func NewCricket(out io.Writer) *Cricket { return &Cricket{sport{name: "Cricket", out: out}} }

// Football is a Game printing football lines.
type Football struct{ sport }

// NewFootball returns a football game printing to out.
func NewFootball(out io.Writer) *Football { return &Football{sport{name: "Football", out: out}} }

// Demo plays a cricket game and a football game.
var Demo = demo.Define("template-method", demo.Behavioral,
	"Fix an algorithm's skeleton and let variants fill in the steps",
	func(w io.Writer) error {
		fmt.Fprintln(w, "Playing Cricket:")
		Play(NewCricket(w))

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Playing Football:")
		Play(NewFootball(w))
		return nil
	})
