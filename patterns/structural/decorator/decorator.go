// Package decorator layers flavours over a plain milkshake.
package decorator

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// MilkShake is the component both the base shake and the decorators implement.
type MilkShake interface {
	Taste()
}

// ConcreteMilkShake is plain milk.
type ConcreteMilkShake struct{ Out io.Writer }

func (m ConcreteMilkShake) Taste() { fmt.Fprintln(m.Out, "It’s milk !") }

// BananaMilkShake tastes like Inner, then adds banana.
type BananaMilkShake struct {
	Inner MilkShake
	Out   io.Writer
}

func (m BananaMilkShake) Taste() {
	m.Inner.Taste()
	fmt.Fprintln(m.Out, " Adding Banana flavor to the milk shake !")
	fmt.Fprintln(m.Out, " It’s Banana milk shake !")
}

// PeanutButterMilkShake tastes like Inner, then adds peanut butter.
type PeanutButterMilkShake struct {
	Inner MilkShake
	Out   io.Writer
}

func (m PeanutButterMilkShake) Taste() {
	m.Inner.Taste()
	fmt.Fprintln(m.Out, " Adding Peanut butter flavor to the milk shake !")
	fmt.Fprintln(m.Out, " It’s Peanut butter milk shake !")
}

// Demo serves a peanut butter shake and a banana shake.
var Demo = demo.Define("decorator", demo.Structural,
	"Attach responsibilities to an object by wrapping it",
	func(w io.Writer) error {
		PeanutButterMilkShake{Inner: ConcreteMilkShake{Out: w}, Out: w}.Taste()
		BananaMilkShake{Inner: ConcreteMilkShake{Out: w}, Out: w}.Taste()
		return nil
	})
