package demo

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnknownScenario is matched (errors.Is) by UnknownScenarioError.
	ErrUnknownScenario = errors.New("demo: unknown scenario")

	// ErrNilScenario is returned when registering a nil Scenario.
	ErrNilScenario = errors.New("demo: nil scenario")

	// ErrScenarioPanic is matched (errors.Is) by ScenarioPanicError.
	ErrScenarioPanic = errors.New("demo: scenario panicked")
)

// UnknownScenarioError is returned when a name is not registered.
type UnknownScenarioError struct{ Name string }

// Error implements the error interface.
func (e UnknownScenarioError) Error() string {
	// Example: demo: unknown scenario "nope"
	return "demo: unknown scenario " + strconv.Quote(e.Name)
}

// Is lets errors.Is(err, ErrUnknownScenario) match.
func (e UnknownScenarioError) Is(target error) bool { return target == ErrUnknownScenario }

// DuplicateScenarioError is returned when a name is registered twice.
type DuplicateScenarioError struct{ Name string }

// Error implements the error interface.
func (e DuplicateScenarioError) Error() string {
	return "demo: duplicate scenario " + strconv.Quote(e.Name)
}

// ScenarioPanicError carries a panic recovered from a scenario run.
type ScenarioPanicError struct {
	Name  string
	Value any
}

// Error implements the error interface.
func (e ScenarioPanicError) Error() string {
	return fmt.Sprintf("demo: scenario %q panicked: %v", e.Name, e.Value)
}

// Is lets errors.Is(err, ErrScenarioPanic) match.
func (e ScenarioPanicError) Is(target error) bool { return target == ErrScenarioPanic }

// Unwrap exposes the panic value when it was itself an error.
func (e ScenarioPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
