// Package composite treats single graphics and groups of graphics alike.
package composite

import (
	"fmt"
	"io"
	"slices"

	"github.com/sghaida/patterns/demo"
)

// Graphic is implemented by leaves and groups alike.
type Graphic interface {
	Print()
}

// CompositeGraphic prints its children in insertion order.
type CompositeGraphic struct {
	graphics []Graphic
}

// Add appends g as the last child.
func (c *CompositeGraphic) Add(g Graphic) { c.graphics = append(c.graphics, g) }

// Remove drops the first occurrence of g. It reports whether g was found.
func (c *CompositeGraphic) Remove(g Graphic) bool {
	i := slices.Index(c.graphics, g)
	if i < 0 {
		return false
	}
	c.graphics = slices.Delete(c.graphics, i, i+1)
	return true
}

// Len is the number of direct children.
func (c *CompositeGraphic) Len() int { return len(c.graphics) }

// Print prints every child in insertion order.
func (c *CompositeGraphic) Print() {
	for _, g := range c.graphics {
		g.Print()
	}
}

// Ellipse is a leaf graphic.
type Ellipse struct{ Out io.Writer }

func (e *Ellipse) Print() { fmt.Fprintln(e.Out, "Ellipse") }

// Square is a leaf graphic.
type Square struct{ Out io.Writer }

func (s *Square) Print() { fmt.Fprintln(s.Out, "Square") }

// Demo prints a group holding two groups of ellipses and squares.
var Demo = demo.Define("composite", demo.Structural,
	"Compose objects into trees and treat leaves and groups uniformly",
	func(w io.Writer) error {
		ellipse := func() Graphic { return &Ellipse{Out: w} }
		square := func() Graphic { return &Square{Out: w} }

		first := &CompositeGraphic{}
		first.Add(ellipse())
		first.Add(ellipse())
		first.Add(square())
		first.Add(ellipse())

		second := &CompositeGraphic{}
		second.Add(ellipse())
		second.Add(square())
		second.Add(square())
		second.Add(square())

		graphic := &CompositeGraphic{}
		graphic.Add(first)
		graphic.Add(second)
		graphic.Print()
		return nil
	})
