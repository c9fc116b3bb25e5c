package main

import "math/rand/v2"

// TileSource hands out board letters one at a time.
type TileSource interface {
	Tile() rune
}

// TileFunc adapts a plain function to TileSource.
type TileFunc func() rune

func (f TileFunc) Tile() rune { return f() }

// RandomTiles draws uniform letters A-Z from a seeded generator.
type RandomTiles struct {
	rng *rand.Rand
}

// NewRandomTiles returns a source whose sequence is fixed by seed.
func NewRandomTiles(seed uint64) *RandomTiles {
	return &RandomTiles{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (t *RandomTiles) Tile() rune {
	return 'A' + rune(t.rng.IntN(26))
}

