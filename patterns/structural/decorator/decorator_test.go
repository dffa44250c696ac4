package decorator_test

import (
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/patterns/structural/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Decorators
// -----------------------------------------------------------------------------

// TestDecorators_Stack verifies decorators compose, innermost first.
func TestDecorators_Stack(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", "decorator")
	var shake decorator.MilkShake = decorator.ConcreteMilkShake{Out: tr}
	shake = decorator.BananaMilkShake{Inner: shake, Out: tr}
	shake = decorator.PeanutButterMilkShake{Inner: shake, Out: tr}
	shake.Taste()

	assert.Equal(t, []string{
		"It’s milk !",
		" Adding Banana flavor to the milk shake !",
		" It’s Banana milk shake !",
		" Adding Peanut butter flavor to the milk shake !",
		" It’s Peanut butter milk shake !",
	}, tr.Lines())
}

//
// -----------------------------------------------------------------------------
// Demo
// -----------------------------------------------------------------------------

// TestDemo verifies the scripted peanut butter then banana shakes.
func TestDemo(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", decorator.Demo.Name())
	require.NoError(t, decorator.Demo.Run(tr))
	assert.Equal(t, []string{
		"It’s milk !",
		" Adding Peanut butter flavor to the milk shake !",
		" It’s Peanut butter milk shake !",
		"It’s milk !",
		" Adding Banana flavor to the milk shake !",
		" It’s Banana milk shake !",
	}, tr.Lines())
}
