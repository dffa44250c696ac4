package abstractfactory_test

import (
	"testing"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/patterns/creational/abstractfactory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Factories
// -----------------------------------------------------------------------------

// TestFactories_ProduceMatchingFamilies verifies each factory yields a matching terrain and vegetation.
func TestFactories_ProduceMatchingFamilies(t *testing.T) {
	t.Parallel()

	desert := abstractfactory.NewWorld(abstractfactory.DesertFactory{})
	assert.IsType(t, abstractfactory.Sand{}, desert.Terrain)
	assert.IsType(t, abstractfactory.Cactus{}, desert.Vegetation)

	forest := abstractfactory.NewWorld(abstractfactory.ForestFactory{})
	assert.IsType(t, abstractfactory.Grass{}, forest.Terrain)
	assert.IsType(t, abstractfactory.Tree{}, forest.Vegetation)
}

//
// -----------------------------------------------------------------------------
// Demo
// -----------------------------------------------------------------------------

// TestDemo verifies the scripted desert and forest worlds.
func TestDemo(t *testing.T) {
	t.Parallel()

	tr := demo.NewTranscript("", abstractfactory.Demo.Name())
	require.NoError(t, abstractfactory.Demo.Run(tr))
	assert.Equal(t, []string{
		"Desert world: terrain=Sand vegetation=Cactus",
		"Forest world: terrain=Grass vegetation=Tree",
	}, tr.Lines())
}
