// Package builder assembles a FoodOrder step by step through a fluent
// builder.
package builder

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// FoodOrder is immutable once built. Empty optional fields mean "none".
type FoodOrder struct {
	bread      string
	condiments string
	meat       string
	fish       string
}

// Accessors for the order's parts; empty means none.
func (o FoodOrder) Bread() string      { return o.bread }
func (o FoodOrder) Condiments() string { return o.condiments }
func (o FoodOrder) Meat() string       { return o.meat }
func (o FoodOrder) Fish() string       { return o.fish }

// String lists every part, printing none for unset ones.
func (o FoodOrder) String() string {
	return fmt.Sprintf("FoodOrder(bread=%s, condiments=%s, meat=%s, fish=%s)",
		orNone(o.bread), orNone(o.condiments), orNone(o.meat), orNone(o.fish))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// FoodOrderBuilder collects the parts of an order.
type FoodOrderBuilder struct {
	order FoodOrder
}

// NewFoodOrderBuilder returns a builder with nothing set.
func NewFoodOrderBuilder() *FoodOrderBuilder { return &FoodOrderBuilder{} }

// Bread sets the bread.
func (b *FoodOrderBuilder) Bread(bread string) *FoodOrderBuilder {
	b.order.bread = bread
	return b
}

// Condiments sets the condiments.
func (b *FoodOrderBuilder) Condiments(condiments string) *FoodOrderBuilder {
	b.order.condiments = condiments
	return b
}

// Meat sets the meat.
func (b *FoodOrderBuilder) Meat(meat string) *FoodOrderBuilder {
	b.order.meat = meat
	return b
}

// Fish sets the fish.
func (b *FoodOrderBuilder) Fish(fish string) *FoodOrderBuilder {
	b.order.fish = fish
	return b
}

// Build returns the order as configured. Unset bread stays empty.
func (b *FoodOrderBuilder) Build() FoodOrder { return b.order }

// RandomBuild fills every unset part with a house default and builds.
func (b *FoodOrderBuilder) RandomBuild() FoodOrder {
	return b.Bread(or(b.order.bread, "dry")).
		Condiments(or(b.order.condiments, "pepper")).
		Meat(or(b.order.meat, "beef")).
		Fish(or(b.order.fish, "Tilapia")).
		Build()
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Demo builds one order by hand and one from house defaults.
var Demo = demo.Define("builder", demo.Creational,
	"Assemble a complex object step by step",
	func(w io.Writer) error {
		custom := NewFoodOrderBuilder().
			Bread("white bread").
			Meat("bacon").
			Fish("salmon").
			Build()
		fmt.Fprintln(w, custom)

		house := NewFoodOrderBuilder().Meat("chicken").RandomBuild()
		fmt.Fprintln(w, house)
		return nil
	})
