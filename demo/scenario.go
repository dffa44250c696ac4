package demo

import (
	"io"
	"strconv"
)

// Category groups scenarios the way the classic catalogue does.
type Category string

const (
	Behavioral Category = "behavioral"
	Creational Category = "creational"
	Structural Category = "structural"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Behavioral, Creational, Structural:
		return true
	}
	return false
}

// Scenario is one self-contained pattern demonstration.
//
// Run must build its object graph from scratch on every call and write its
// observable output, one line per event, to w.
type Scenario interface {
	Name() string
	Category() Category
	Summary() string
	Run(w io.Writer) error
}

// ScriptFunc is the body of a scenario.
type ScriptFunc func(w io.Writer) error

type script struct {
	name     string
	category Category
	summary  string
	run      ScriptFunc
}

// Define builds a Scenario from a script function.
//
// It panics on an empty name, an unknown category or a nil script; those are
// wiring mistakes in package-level declarations.
func Define(name string, category Category, summary string, run ScriptFunc) Scenario {
	if name == "" {
		panic("demo: empty scenario name")
	}
	if !category.Valid() {
		panic("demo: unknown category " + strconv.Quote(string(category)) + " for " + strconv.Quote(name))
	}
	if run == nil {
		panic("demo: nil script for " + strconv.Quote(name))
	}
	return &script{name: name, category: category, summary: summary, run: run}
}

func (s *script) Name() string          { return s.name }
func (s *script) Category() Category    { return s.category }
func (s *script) Summary() string       { return s.summary }
func (s *script) Run(w io.Writer) error { return s.run(w) }
