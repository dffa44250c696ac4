// Package state models a vending machine whose behaviour depends on the
// state object it currently holds.
package state

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// Name identifies a vending machine state.
type Name string

const (
	Idle           Name = "Idle"
	AcceptingMoney Name = "AcceptingMoney"
	Dispensing     Name = "Dispensing"
)

// VendingMachineState is the capability set every state implements.
// Actions that make no sense in a state print a hint and leave the
// machine where it is.
type VendingMachineState interface {
	Name() Name
	InsertMoney(amount int)
	SelectItem(itemCode string)
	DispenseItem()
}

// VendingMachine is the context; it forwards every action to its state.
type VendingMachine struct {
	current VendingMachineState
	out     io.Writer
}

// NewVendingMachine returns a machine in the Idle state.
func NewVendingMachine(out io.Writer) *VendingMachine {
	vm := &VendingMachine{out: out}
	vm.current = &idleState{vm: vm}
	return vm
}

// The actions are forwarded to the current state.
func (vm *VendingMachine) InsertMoney(amount int)     { vm.current.InsertMoney(amount) }
func (vm *VendingMachine) SelectItem(itemCode string) { vm.current.SelectItem(itemCode) }
func (vm *VendingMachine) DispenseItem()              { vm.current.DispenseItem() }

// Current is the name of the active state.
func (vm *VendingMachine) Current() Name { return vm.current.Name() }

func (vm *VendingMachine) changeState(s VendingMachineState) { vm.current = s }

func (vm *VendingMachine) say(format string, args ...any) {
	fmt.Fprintf(vm.out, format+"\n", args...)
}

type idleState struct{ vm *VendingMachine }

func (s *idleState) Name() Name { return Idle }

func (s *idleState) InsertMoney(amount int) {
	s.vm.say("%d credits inserted.", amount)
	s.vm.changeState(&acceptingMoneyState{vm: s.vm})
}

func (s *idleState) SelectItem(string) { s.vm.say("Please insert money first.") }
func (s *idleState) DispenseItem()     { s.vm.say("Please select an item first.") }

type acceptingMoneyState struct{ vm *VendingMachine }

func (s *acceptingMoneyState) Name() Name { return AcceptingMoney }

func (s *acceptingMoneyState) InsertMoney(amount int) { s.vm.say("%d credits inserted.", amount) }

func (s *acceptingMoneyState) SelectItem(itemCode string) {
	s.vm.say("Item %s selected.", itemCode)
	s.vm.changeState(&dispensingState{vm: s.vm})
}

func (s *acceptingMoneyState) DispenseItem() { s.vm.say("Please select an item first.") }

type dispensingState struct{ vm *VendingMachine }

func (s *dispensingState) Name() Name { return Dispensing }

func (s *dispensingState) InsertMoney(int)   { s.vm.say("Please wait, dispensing item...") }
func (s *dispensingState) SelectItem(string) { s.vm.say("Please wait, dispensing item...") }

func (s *dispensingState) DispenseItem() {
	s.vm.say("Item dispensed. Thank you for your purchase.")
	s.vm.changeState(&idleState{vm: s.vm})
}

// Demo tries to select before paying, then runs one full purchase.
var Demo = demo.Define("state", demo.Behavioral,
	"Change a vending machine's behaviour as its state changes",
	func(w io.Writer) error {
		vm := NewVendingMachine(w)

		vm.SelectItem("A01")
		vm.InsertMoney(5)
		vm.SelectItem("A01")
		vm.DispenseItem()
		vm.DispenseItem()
		return nil
	})
