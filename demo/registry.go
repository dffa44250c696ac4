package demo

import (
	"sort"
	"sync"
)

// Registry maps scenario names to scenarios.
//
// It is safe for concurrent readers; registration normally happens once,
// in a composition root such as catalog.New.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Scenario
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Scenario{}}
}

// Register adds s under s.Name().
func (r *Registry) Register(s Scenario) error {
	if s == nil {
		return ErrNilScenario
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.items[name]; exists {
		return DuplicateScenarioError{Name: name}
	}
	r.items[name] = s
	return nil
}

// Provide registers s and returns the registry for chaining.
// It panics where Register would return an error.
func (r *Registry) Provide(s Scenario) *Registry {
	if err := r.Register(s); err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the scenario registered under name, or an
// UnknownScenarioError.
func (r *Registry) Resolve(name string) (Scenario, error) {
	s, ok := r.Get(name)
	if !ok {
		return nil, UnknownScenarioError{Name: name}
	}
	return s, nil
}

// Get returns the scenario if present.
func (r *Registry) Get(name string) (Scenario, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[name]
	return s, ok
}

// MustGet returns the scenario or panics with an UnknownScenarioError.
// Useful in examples/tests where a missing name should fail fast.
func (r *Registry) MustGet(name string) Scenario {
	s, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the scenarios of category c, sorted by name.
func (r *Registry) ByCategory(c Category) []Scenario {
	var out []Scenario
	for _, name := range r.Names() {
		if s, ok := r.Get(name); ok && s.Category() == c {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of registered scenarios.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
