// Package catalog is the composition root: it assembles every pattern
// scenario into a demo.Registry.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/patterns/behavioral/chain"
	"github.com/sghaida/patterns/patterns/behavioral/command"
	"github.com/sghaida/patterns/patterns/behavioral/iterator"
	"github.com/sghaida/patterns/patterns/behavioral/mediator"
	"github.com/sghaida/patterns/patterns/behavioral/memento"
	"github.com/sghaida/patterns/patterns/behavioral/observer"
	"github.com/sghaida/patterns/patterns/behavioral/state"
	"github.com/sghaida/patterns/patterns/behavioral/strategy"
	"github.com/sghaida/patterns/patterns/behavioral/templatemethod"
	"github.com/sghaida/patterns/patterns/behavioral/visitor"
	"github.com/sghaida/patterns/patterns/creational/abstractfactory"
	"github.com/sghaida/patterns/patterns/creational/builder"
	"github.com/sghaida/patterns/patterns/creational/factory"
	"github.com/sghaida/patterns/patterns/creational/prototype"
	"github.com/sghaida/patterns/patterns/creational/singleton"
	"github.com/sghaida/patterns/patterns/structural/adapter"
	"github.com/sghaida/patterns/patterns/structural/bridge"
	"github.com/sghaida/patterns/patterns/structural/composite"
	"github.com/sghaida/patterns/patterns/structural/decorator"
	"github.com/sghaida/patterns/patterns/structural/facade"
	"github.com/sghaida/patterns/patterns/structural/flyweight"
	"github.com/sghaida/patterns/patterns/structural/proxy"
)

type options struct {
	singletonWorkers int
}

// Option tunes the scenarios New builds.
type Option func(*options)

// WithSingletonWorkers sets how many goroutines the singleton scenario
// acquires each variant from.
func WithSingletonWorkers(n int) Option {
	return func(o *options) { o.singletonWorkers = n }
}

// New returns a fresh registry holding all scenarios.
func New(opts ...Option) *demo.Registry {
	o := options{singletonWorkers: singleton.DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return demo.NewRegistry().
		// behavioral
		Provide(chain.Demo).
		Provide(command.Demo).
		Provide(iterator.Demo).
		Provide(mediator.Demo).
		Provide(memento.Demo).
		Provide(observer.Demo).
		Provide(state.Demo).
		Provide(strategy.Demo).
		Provide(templatemethod.Demo).
		Provide(visitor.Demo).
		// creational
		Provide(abstractfactory.Demo).
		Provide(builder.Demo).
		Provide(factory.Demo).
		Provide(prototype.Demo).
		Provide(singleton.NewScenario(o.singletonWorkers)).
		// structural
		Provide(adapter.Demo).
		Provide(bridge.Demo).
		Provide(composite.Demo).
		Provide(decorator.Demo).
		Provide(facade.Demo).
		Provide(flyweight.Demo).
		Provide(proxy.Demo)
}

// DisplayName turns a scenario name such as "chain-of-responsibility" into
// "Chain Of Responsibility". It is safe for concurrent use; a cases.Caser
// keeps state between calls, so each call gets its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}
