// Package strategy lets a customer swap fare calculation strategies at
// runtime.
package strategy

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// BookingStrategy supplies the per-passenger fare.
type BookingStrategy interface {
	Fare() float64
}

// CarBookingStrategy charges 12.5 per passenger.
type CarBookingStrategy struct{}

func (CarBookingStrategy) Fare() float64  { return 12.5 }
func (CarBookingStrategy) String() string { return "CarBookingStrategy" }

// TrainBookingStrategy charges 8.5 per passenger.
type TrainBookingStrategy struct{}

func (TrainBookingStrategy) Fare() float64  { return 8.5 }
func (TrainBookingStrategy) String() string { return "TrainBookingStrategy" }

// Customer calculates fares with whatever strategy it currently holds.
type Customer struct {
	Strategy BookingStrategy
	Out      io.Writer
}

// CalculateFare returns passengers times the strategy's fare.
func (c *Customer) CalculateFare(passengers int) float64 {
	fmt.Fprintf(c.Out, "Calculating fares using %v\n", c.Strategy)
	return float64(passengers) * c.Strategy.Fare()
}

// Demo prices five passengers by car, then by train.
var Demo = demo.Define("strategy", demo.Behavioral,
	"Swap fare calculation algorithms at runtime",
	func(w io.Writer) error {
		customer := &Customer{Strategy: CarBookingStrategy{}, Out: w}
		fmt.Fprintln(w, customer.CalculateFare(5))

		customer.Strategy = TrainBookingStrategy{}
		fmt.Fprintln(w, customer.CalculateFare(5))
		return nil
	})
