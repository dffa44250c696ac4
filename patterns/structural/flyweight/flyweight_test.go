package flyweight_test

import (
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/patterns/structural/flyweight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// CoffeeFlavorFactory
// -----------------------------------------------------------------------------

// TestFactory_SharesInstances verifies the same flavour is shared and new flavours grow Total by one.
func TestFactory_SharesInstances(t *testing.T) {
	t.Parallel()

	f := flyweight.NewCoffeeFlavorFactory(demo.NewTranscript("", "flyweight"))
	a := f.Get("Mocha")
	b := f.Get("Mocha")
	assert.Same(t, a, b)
	assert.Equal(t, 1, f.Total())

	f.Get("Flat White")
	assert.Equal(t, 2, f.Total())
	f.Get("Ristretto")
	assert.Equal(t, 3, f.Total())
	assert.Equal(t, "Ristretto", f.Get("Ristretto").Name())
	assert.Equal(t, 3, f.Total())
}

//
// -----------------------------------------------------------------------------
// Demo
// -----------------------------------------------------------------------------

// TestDemo verifies the scripted ten orders and the total of three flavours.
func TestDemo(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", flyweight.Demo.Name())
	require.NoError(t, flyweight.Demo.Run(tr))
	assert.Equal(t, []string{
		"Serving Espresso coffee to table number 1",
		"Serving Cappuccino coffee to table number 2",
		"Serving Latte coffee to table number 3",
		"Serving Espresso coffee to table number 4",
		"Serving Espresso coffee to table number 5",
		"Serving Cappuccino coffee to table number 6",
		"Serving Cappuccino coffee to table number 7",
		"Serving Latte coffee to table number 8",
		"Serving Latte coffee to table number 9",
		"Serving Espresso coffee to table number 10",
		"Total coffee flavors made: 3",
	}, tr.Lines())
}
