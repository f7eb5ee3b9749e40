// Package world provides the static terrain of a tile map: a rectangular
// grid of tile ids that is built once and only read afterwards.
package world

import (
	"errors"
	"fmt"
)

// ErrInvalidMap is returned when map data cannot form a grid.
var ErrInvalidMap = errors.New("invalid map")

// TileID identifies a cell of the tile atlas.
type TileID int

// Grid is a rows × cols array of tile ids stored row-major in a flat buffer.
// Row index is Y, column index is X.
type Grid struct {
	tiles []TileID
	rows  int
	cols  int
}

// NewGrid creates a grid with the given dimensions, copying tiles (row-major).
// A nil tiles slice yields a grid filled with id 0.
func NewGrid(rows, cols int, tiles []TileID) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}
	if tiles != nil && len(tiles) != rows*cols {
		panic(fmt.Sprintf("Grid needs %d tiles, got %d", rows*cols, len(tiles)))
	}

	g := &Grid{
		tiles: make([]TileID, rows*cols),
		rows:  rows,
		cols:  cols,
	}
	copy(g.tiles, tiles)
	return g
}

// NewGridFromRows builds a grid from a slice of rows indexed [y][x].
func NewGridFromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty tile data", ErrInvalidMap)
	}

	cols := len(rows[0])
	tiles := make([]TileID, 0, len(rows)*cols)
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidMap, y, len(row), cols)
		}
		for x, id := range row {
			if id < 0 {
				return nil, fmt.Errorf("%w: negative tile id %d at (%d,%d)", ErrInvalidMap, id, x, y)
			}
			tiles = append(tiles, TileID(id))
		}
	}

	return NewGrid(len(rows), cols, tiles), nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// At returns the tile id at x/y. Callers must pass a valid position.
func (g *Grid) At(x, y int) TileID {
	return g.tiles[g.index(x, y)]
}

// TileAt returns the tile id at x/y, or false if the position is out of bounds.
func (g *Grid) TileAt(x, y int) (TileID, bool) {
	if !g.IsValidPosition(x, y) {
		return 0, false
	}
	return g.At(x, y), true
}

// ForEachTile iterates over all tiles row by row
func (g *Grid) ForEachTile(fn func(x, y int, id TileID)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			fn(x, y, g.At(x, y))
		}
	}
}

// MaxTileID returns the largest tile id used by the grid.
func (g *Grid) MaxTileID() TileID {
	var maxID TileID
	for _, id := range g.tiles {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}

// defaultTiles is the built-in 15x9 map: a border of tile 0 around a field of
// tile 2, with tile 1 in the bottom-right corner.
var defaultTiles = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0},
	{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0},
	{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0},
	{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0},
	{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0},
	{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0},
	{0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
}

// DefaultGrid returns the built-in map used when no map file is configured.
func DefaultGrid() *Grid {
	g, err := NewGridFromRows(defaultTiles)
	if err != nil {
		panic(err)
	}
	return g
}
