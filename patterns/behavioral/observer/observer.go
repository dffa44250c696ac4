// Package observer notifies newspaper subscribers whenever a new edition
// is published.
package observer

import (
	"fmt"
	"io"
	"slices"

	"github.com/sghaida/patterns/demo"
)

// Observer is told that the subject changed.
type Observer interface {
	Update()
}

// Subject keeps observers and notifies them in registration order.
type Subject interface {
	RegisterObserver(o Observer)
	RemoveObserver(o Observer)
	NotifyObservers()
}

// Newspaper is the concrete subject.
type Newspaper struct {
	observers     []Observer
	latestEdition string
}

// RegisterObserver subscribes o to future editions.
func (n *Newspaper) RegisterObserver(o Observer) { n.observers = append(n.observers, o) }

// RemoveObserver drops the first registration of o; unknown observers are ignored.
func (n *Newspaper) RemoveObserver(o Observer) {
	if i := slices.Index(n.observers, o); i >= 0 {
		n.observers = slices.Delete(n.observers, i, i+1)
	}
}

// NotifyObservers calls Update on every subscriber in registration order.
func (n *Newspaper) NotifyObservers() {
	for _, o := range n.observers {
		o.Update()
	}
}

// SetLatestEdition publishes edition and notifies every observer.
func (n *Newspaper) SetLatestEdition(edition string) {
	n.latestEdition = edition
	n.NotifyObservers()
}

// LatestEdition is the most recently published edition.
func (n *Newspaper) LatestEdition() string { return n.latestEdition }

// Observers is the number of registered observers.
func (n *Newspaper) Observers() int { return len(n.observers) }

// Subscriber pulls the latest edition when updated.
type Subscriber struct {
	name      string
	newspaper *Newspaper
	out       io.Writer
}

// NewSubscriber creates a subscriber and registers it with newspaper.
func NewSubscriber(newspaper *Newspaper, name string, out io.Writer) *Subscriber {
	s := &Subscriber{name: name, newspaper: newspaper, out: out}
	newspaper.RegisterObserver(s)
	return s
}

// Update prints the newspaper's latest edition.
func (s *Subscriber) Update() {
	fmt.Fprintf(s.out, "%s: Received the latest edition of the newspaper - '%s'\n", s.name, s.newspaper.LatestEdition())
}

// Demo publishes three editions, removing one subscriber before the last.
var Demo = demo.Define("observer", demo.Behavioral,
	"Notify registered subscribers of every new edition",
	func(w io.Writer) error {
		newspaper := &Newspaper{}

		NewSubscriber(newspaper, "Subscriber 1", w)
		subscriber2 := NewSubscriber(newspaper, "Subscriber 2", w)
		NewSubscriber(newspaper, "Subscriber 3", w)

		newspaper.SetLatestEdition("New Edition 1")
		newspaper.SetLatestEdition("New Edition 2")

		newspaper.RemoveObserver(subscriber2)

		newspaper.SetLatestEdition("New Edition 3")
		return nil
	})
