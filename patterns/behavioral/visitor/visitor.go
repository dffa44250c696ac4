// Package visitor applies operations to shapes by matching an explicit
// enumeration of shape kinds against an enumeration of operations, instead
// of relying on double dispatch.
package visitor

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// ShapeKind enumerates the element kinds.
type ShapeKind int

const (
	Circle ShapeKind = iota + 1
	Square
)

// String names the kind, or ShapeKind(n) for unknown values.
func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Operation enumerates what can be done to a shape.
type Operation int

const (
	Draw Operation = iota + 1
	Erase
)

// String names the operation, or Operation(n) for unknown values.
func (o Operation) String() string {
	switch o {
	case Draw:
		return "Draw"
	case Erase:
		return "Erase"
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Shape is a tagged element.
type Shape struct {
	Kind ShapeKind
}

// UnsupportedVisitError is returned for a kind or operation outside the
// enumerations.
type UnsupportedVisitError struct {
	Op   Operation
	Kind ShapeKind
}

// Error implements the error interface.
func (e UnsupportedVisitError) Error() string {
	return fmt.Sprintf("visitor: no %v operation for %v", e.Op, e.Kind)
}

// Visit applies op to shape, writing its output to w.
func Visit(op Operation, shape Shape, w io.Writer) error {
	switch op {
	case Draw:
		switch shape.Kind {
		case Circle, Square:
			fmt.Fprintf(w, "Drawing %v\n", shape.Kind)
			return nil
		}
	case Erase:
		switch shape.Kind {
		case Circle, Square:
			fmt.Fprintf(w, "Erasing %v\n", shape.Kind)
			return nil
		}
	}
	return UnsupportedVisitError{Op: op, Kind: shape.Kind}
}

// VisitAll applies op to every shape in order and stops at the first error.
func VisitAll(op Operation, shapes []Shape, w io.Writer) error {
	for _, s := range shapes {
		if err := Visit(op, s, w); err != nil {
			return err
		}
	}
	return nil
}

// Demo draws a circle and a square.
var Demo = demo.Define("visitor", demo.Behavioral,
	"Apply an operation across element kinds without changing them",
	func(w io.Writer) error {
		shapes := []Shape{{Kind: Circle}, {Kind: Square}}
		return VisitAll(Draw, shapes, w)
	})
