// Package abstractfactory builds matching terrain and vegetation for a
// world from a single factory, so the two always belong to the same biome.
package abstractfactory

import (
	"fmt"
	"io"

	"github.com/sghaida/patterns/demo"
)

// Terrain and Vegetation are the two product kinds of a world.
type Terrain interface{ Terrain() string }
type Vegetation interface{ Vegetation() string }

// Concrete products; the desert family is Sand and Cactus, the forest family Grass and Tree.
type Sand struct{}
type Grass struct{}
type Cactus struct{}
type Tree struct{}

func (Sand) Terrain() string      { return "Sand" }
func (Grass) Terrain() string     { return "Grass" }
func (Cactus) Vegetation() string { return "Cactus" }
func (Tree) Vegetation() string   { return "Tree" }

// Factory creates one family of related products.
type Factory interface {
	CreateTerrain() Terrain
	CreateVegetation() Vegetation
}

// DesertFactory makes Sand and Cactus.
type DesertFactory struct{}

func (DesertFactory) CreateTerrain() Terrain       { return Sand{} }
func (DesertFactory) CreateVegetation() Vegetation { return Cactus{} }

// ForestFactory makes Grass and Tree.
type ForestFactory struct{}

func (ForestFactory) CreateTerrain() Terrain       { return Grass{} }
func (ForestFactory) CreateVegetation() Vegetation { return Tree{} }

// World only knows the Factory interface.
type World struct {
	Terrain    Terrain
	Vegetation Vegetation
}

// NewWorld builds a world whose parts all come from f.
func NewWorld(f Factory) *World {
	return &World{Terrain: f.CreateTerrain(), Vegetation: f.CreateVegetation()}
}

// String formats the world as terrain=... vegetation=....
func (w *World) String() string {
	return fmt.Sprintf("terrain=%s vegetation=%s", w.Terrain.Terrain(), w.Vegetation.Vegetation())
}

// Demo builds one desert world and one forest world.
var Demo = demo.Define("abstract-factory", demo.Creational,
	"Create families of related objects through one factory interface",
	func(w io.Writer) error {
		fmt.Fprintf(w, "Desert world: %v\n", NewWorld(DesertFactory{}))
		fmt.Fprintf(w, "Forest world: %v\n", NewWorld(ForestFactory{}))
		return nil
	})
