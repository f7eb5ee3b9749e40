// Package generator builds tile maps procedurally.
package generator

import (
	"errors"
	"math/rand"

	"tilewalk/pkg/engine/world"
)

// Tile ids written by the generators. They match the built-in map: 0 for
// the outer wall, 2 for open floor.
const (
	WallTile     world.TileID = 0
	CorridorTile world.TileID = 1
	FloorTile    world.TileID = 2
)

// ErrTooSmall is returned when the requested map cannot hold a single room.
var ErrTooSmall = errors.New("map too small to generate")

// Layout is a generated map and a suggested actor start.
type Layout struct {
	Grid   *world.Grid
	StartX int
	StartY int
}

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(rows, cols int, rng *rand.Rand) (Layout, error)
	Name() string
}

// Available generators
var (
	BSP = &BSPGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = BSP
