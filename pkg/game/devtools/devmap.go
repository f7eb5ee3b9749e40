// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"tilewalk/pkg/engine/world"
)

// DevGrid builds a hard-coded developer testing map of rows x cols. Every
// atlas id from 0 to ids-1 appears in order along the border so each tile
// can be checked at a glance, and the interior is a checkerboard of ids 0
// and 1 that makes scrolling easy to follow.
func DevGrid(rows, cols, ids int) *world.Grid {
	tiles := make([]world.TileID, rows*cols)
	next := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := y*cols + x
			if y == 0 || x == 0 || y == rows-1 || x == cols-1 {
				tiles[i] = world.TileID(next % max(ids, 1))
				next++
				continue
			}
			tiles[i] = world.TileID((x + y) % 2)
		}
	}
	return world.NewGrid(rows, cols, tiles)
}
