// Package iterator walks product collections without exposing how they
// store their elements.
package iterator

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// Iterator yields products one at a time.
type Iterator interface {
	HasNext() bool
	Next() Product
}

// Product is the element type both collections hold.
type Product struct {
	ID   int
	Name string
}

// String formats the product as Product(id=1, name=Product 1).
func (p Product) String() string {
	return fmt.Sprintf("Product(id=%d, name=%s)", p.ID, p.Name)
}

// ArrayCapacity bounds ProductArrayCollection.
const ArrayCapacity = 10

// ProductArrayCollection stores at most ArrayCapacity products; further
// adds are dropped.
type ProductArrayCollection struct {
	products [ArrayCapacity]Product
	count    int
}

// Add stores p and reports whether there was room for it.
func (c *ProductArrayCollection) Add(p Product) bool {
	if c.count >= len(c.products) {
		return false
	}
	c.products[c.count] = p
	c.count++
	return true
}

// Iterator returns a fresh cursor over the stored products.
func (c *ProductArrayCollection) Iterator() Iterator {
	return &arrayIterator{c: c}
}

type arrayIterator struct {
	c     *ProductArrayCollection
	index int
}

func (it *arrayIterator) HasNext() bool { return it.index < it.c.count }

func (it *arrayIterator) Next() Product {
	p := it.c.products[it.index]
	it.index++
	return p
}

// ProductListCollection grows without bound.
type ProductListCollection struct {
	products []Product
}

// Add appends p; the list has no capacity limit.
func (c *ProductListCollection) Add(p Product) { c.products = append(c.products, p) }

// Iterator returns a fresh cursor over the stored products.
func (c *ProductListCollection) Iterator() Iterator {
	return &listIterator{c: c}
}

type listIterator struct {
	c     *ProductListCollection
	index int
}

func (it *listIterator) HasNext() bool { return it.index < len(it.c.products) }

func (it *listIterator) Next() Product {
	p := it.c.products[it.index]
	it.index++
	return p
}

// Collect drains it into a slice.
func Collect(it Iterator) []Product {
	var out []Product
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// Demo fills a list collection with three products and iterates it.
var Demo = demo.Define("iterator", demo.Behavioral,
	"Traverse a collection without knowing its internal representation",
	func(w io.Writer) error {
		collection := &ProductListCollection{}
		collection.Add(Product{ID: 1, Name: "Product 1"})
		collection.Add(Product{ID: 2, Name: "Product 2"})
		collection.Add(Product{ID: 3, Name: "Product 3"})

		it := collection.Iterator()
		for it.HasNext() {
			fmt.Fprintln(w, it.Next())
		}
		return nil
	})
