// Package flyweight shares one CoffeeFlavor per flavour name across all
// orders.
package flyweight

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// CoffeeOrder is served to a table; the table is extrinsic state.
type CoffeeOrder interface {
	Serve(tableNumber int)
}

// CoffeeFlavor holds only intrinsic state; the table number is passed in.
type CoffeeFlavor struct {
	name string
	out  io.Writer
}

// Name is the flavour name.
func (f *CoffeeFlavor) Name() string { return f.name }

// Serve prints the flavour going to tableNumber.
func (f *CoffeeFlavor) Serve(tableNumber int) {
	fmt.Fprintf(f.out, "Serving %s coffee to table number %d\n", f.name, tableNumber)
}

// CoffeeFlavorFactory hands out shared flavours, creating each at most once.
type CoffeeFlavorFactory struct {
	out     io.Writer
	flavors map[string]*CoffeeFlavor
}

// NewCoffeeFlavorFactory returns a factory with no flavours yet.
func NewCoffeeFlavorFactory(out io.Writer) *CoffeeFlavorFactory {
	return &CoffeeFlavorFactory{out: out, flavors: make(map[string]*CoffeeFlavor)}
}

// Get returns the shared flavour for name, creating it on first use.
func (f *CoffeeFlavorFactory) Get(name string) *CoffeeFlavor {
	if fl, ok := f.flavors[name]; ok {
		return fl
	}
	fl := &CoffeeFlavor{name: name, out: f.out}
	f.flavors[name] = fl
	return fl
}

// Total is the number of distinct flavours created so far.
func (f *CoffeeFlavorFactory) Total() int { return len(f.flavors) }

// Demo serves ten orders from three shared flavours.
var Demo = demo.Define("flyweight", demo.Structural,
	"Share fine-grained objects instead of duplicating them",
	func(w io.Writer) error {
		factory := NewCoffeeFlavorFactory(w)
		orders := []string{
			"Espresso", "Cappuccino", "Latte", "Espresso", "Espresso",
			"Cappuccino", "Cappuccino", "Latte", "Latte", "Espresso",
		}
		for i, order := range orders {
			var o CoffeeOrder = factory.Get(order)
			o.Serve(i + 1)
		}
		fmt.Fprintf(w, "Total coffee flavors made: %d\n", factory.Total())
		return nil
	})
