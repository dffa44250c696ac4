package singleton

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/sghaida/patterns/demo"
)

// DefaultWorkers is the number of goroutines the demo acquires each
// variant from.
const DefaultWorkers = 8

// Demo acquires every variant with DefaultWorkers goroutines.
var Demo = NewScenario(DefaultWorkers)

// NewScenario returns the singleton demo acquiring each variant from
// workers goroutines. Values below 1 are treated as 1.
func NewScenario(workers int) demo.Scenario {
	workers = max(workers, 1)
	return demo.Define("singleton", demo.Creational,
		"Guarantee a single shared instance with a global access point",
		func(w io.Writer) error {
			acquirers := []func() Doer{
				func() Doer { return LazyInstance() },
				func() Doer { return EagerInstance() },
				func() Doer { return OnceInstance() },
				func() Doer { return Instance },
			}
			for _, acquire := range acquirers {
				got, err := acquireConcurrently(workers, acquire)
				if err != nil {
					return fmt.Errorf("singleton: %w", err)
				}
				name := got[0].Variant()
				fmt.Fprintf(w, "%s: %d acquisitions, same instance: %t\n", name, workers, allSame(got))
				fmt.Fprintf(w, "%s: %s\n", name, got[0].DoSomething())
			}
			fmt.Fprintf(w, "lazy constructed %d time(s)\n", LazyConstructions())
			fmt.Fprintf(w, "once constructed %d time(s)\n", OnceConstructions())
			return nil
		})
}

func acquireConcurrently(n int, acquire func() Doer) ([]Doer, error) {
	got := make([]Doer, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			d := acquire()
			if d == nil {
				return fmt.Errorf("acquisition %d returned nil", i)
			}
			got[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return got, nil
}

func allSame(ds []Doer) bool {
	for _, d := range ds[1:] {
		if d != ds[0] {
			return false
		}
	}
	return true
}
