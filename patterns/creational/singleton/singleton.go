// Package singleton shows four ways of keeping a single process-wide
// instance: double-checked lazy, eager, once-lazy and enum-style.
package singleton

import (
	"sync"
	"sync/atomic"
)

// Doer is the behaviour every variant exposes.
type Doer interface {
	DoSomething() string
	Variant() string
}

// ---- double-checked lazy ----

// Lazy is created on first access under a mutex; later accesses take the
// atomic fast path. The field keeps the type non-zero-sized so instances
// have distinct addresses.
type Lazy struct{ variant string }

var (
	lazyInstance atomic.Pointer[Lazy]
	lazyMu       sync.Mutex
	lazyBuilds   atomic.Int64
)

// LazyInstance returns the Lazy singleton, constructing it on first use.
func LazyInstance() *Lazy {
	if p := lazyInstance.Load(); p != nil {
		return p
	}
	lazyMu.Lock()
	defer lazyMu.Unlock()
	if p := lazyInstance.Load(); p != nil {
		return p
	}
	lazyBuilds.Add(1)
	p := &Lazy{variant: "lazy"}
	lazyInstance.Store(p)
	return p
}

// LazyConstructions reports how many times the Lazy constructor ran.
func LazyConstructions() int64 { return lazyBuilds.Load() }

// DoSomething is the singleton's one piece of behaviour.
func (*Lazy) DoSomething() string { return "Doing something" }

// Variant names the construction strategy.
func (l *Lazy) Variant() string { return l.variant }

// ---- eager ----

// Eager is constructed during package initialisation.
type Eager struct{ variant string }

var eagerInstance = &Eager{variant: "eager"}

// EagerInstance returns the Eager singleton.
func EagerInstance() *Eager { return eagerInstance }

// DoSomething is the singleton's one piece of behaviour.
func (*Eager) DoSomething() string { return "Doing something" }

// Variant names the construction strategy.
func (e *Eager) Variant() string { return e.variant }

// ---- once-lazy ----

// Once is constructed on first use through sync.OnceValue.
type Once struct{ variant string }

var (
	onceBuilds   atomic.Int64
	onceInstance = sync.OnceValue(func() *Once {
		onceBuilds.Add(1)
		return &Once{variant: "once"}
	})
)

// OnceInstance returns the Once singleton.
func OnceInstance() *Once { return onceInstance() }

// OnceConstructions reports how many times the Once constructor ran.
func OnceConstructions() int64 { return onceBuilds.Load() }

// DoSomething is the singleton's one piece of behaviour.
func (*Once) DoSomething() string { return "Doing something" }

// Variant names the construction strategy.
func (o *Once) Variant() string { return o.variant }

// ---- enum-style ----

// Enum has exactly one value, Instance.
type Enum int

// Instance is the only Enum value.
const Instance Enum = 0

// DoSomething is the singleton's one piece of behaviour.
func (Enum) DoSomething() string { return "Doing something" }

// Variant names the construction strategy.
func (Enum) Variant() string { return "enum" }
