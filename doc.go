// Package patterns is a catalogue of classic design patterns written as
// small, self-contained Go programs.
//
// Every pattern lives in its own package and exposes a Demo scenario:
//
//   - patterns/behavioral: chain of responsibility, command, iterator,
//     mediator, memento, observer, state, strategy, template method, visitor
//   - patterns/creational: abstract factory, builder, factory, prototype,
//     singleton
//   - patterns/structural: adapter, bridge, composite, decorator, facade,
//     flyweight, proxy
//
// The demo package runs scenarios by name and captures their output as an
// ordered list of events. catalog assembles all scenarios into one registry.
//
// See also:
//   - cmd/patterns: list, run and explain scenarios from the command line
//   - examples/*: one runnable main per pattern
package patterns
