// Package facade boots a Computer through a single Start call.
package facade

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

const (
	BootAddress int64 = 0
	BootSector  int64 = 0
	SectorSize  int   = 0
)

// CPU, Memory and HardDrive are the subsystems hidden behind Computer.
type CPU struct{ Out io.Writer }

func (c CPU) Freeze()             { fmt.Fprintln(c.Out, "Freezing.") }
func (c CPU) Jump(position int64) { fmt.Fprintf(c.Out, "Jump to %d.\n", position) }
func (c CPU) Execute()            { fmt.Fprintln(c.Out, "Executing.") }

type Memory struct{ Out io.Writer }

// Load copies data to position.
func (m Memory) Load(position int64, _ []byte) {
	fmt.Fprintf(m.Out, "Loading from memory position: %d\n", position)
}

// HardDrive is a blank simulated disk.
type HardDrive struct{}

// Read returns size bytes starting at lba. The simulated drive is blank.
func (HardDrive) Read(lba int64, size int) []byte { return make([]byte, size) }

// Computer hides the boot sequence of its subsystems.
type Computer struct {
	cpu    CPU
	memory Memory
	disk   HardDrive
}

// NewComputer wires the subsystems to print to out.
func NewComputer(out io.Writer) *Computer {
	return &Computer{cpu: CPU{Out: out}, memory: Memory{Out: out}}
}

// Start freezes the CPU, loads the boot sector and jumps to it.
func (c *Computer) Start() {
	c.cpu.Freeze()
	c.memory.Load(BootAddress, c.disk.Read(BootSector, SectorSize))
	c.cpu.Jump(BootAddress)
	c.cpu.Execute()
}

// Demo boots a computer through its facade.
var Demo = demo.Define("facade", demo.Structural,
	"Offer one simple entry point to a complex subsystem",
	func(w io.Writer) error {
		NewComputer(w).Start()
		return nil
	})
