// Package bridge separates a remote control from the appliances it drives.
package bridge

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// Appliance is the implementation side of the bridge.
type Appliance interface {
	Run()
}

// Switch is the abstraction side.
type Switch interface {
	TurnOn()
}

// TV is an Appliance.
type TV struct{ Out io.Writer }

func (a TV) Run() { fmt.Fprintln(a.Out, "TV turned on") }

// VacuumCleaner is an Appliance.
type VacuumCleaner struct{ Out io.Writer }

func (a VacuumCleaner) Run() { fmt.Fprintln(a.Out, "VacuumCleaner turned on") }

// RemoteControl works with any Appliance; the appliance can be swapped.
type RemoteControl struct {
	Appliance Appliance
}

// TurnOn runs the current appliance.
func (r *RemoteControl) TurnOn() { r.Appliance.Run() }

// Demo turns on a TV and a vacuum cleaner through the same kind of remote.
var Demo = demo.Define("bridge", demo.Structural,
	"Decouple an abstraction from its implementation",
	func(w io.Writer) error {
		var tvRemote Switch = &RemoteControl{Appliance: TV{Out: w}}
		tvRemote.TurnOn()

		var vacuumRemote Switch = &RemoteControl{Appliance: VacuumCleaner{Out: w}}
		vacuumRemote.TurnOn()
		return nil
	})
