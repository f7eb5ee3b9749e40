package devtools

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/gameplay"
)

const tileDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// tileSymbol returns one character for a tile id: base-36 digits, then '+'.
func tileSymbol(id world.TileID) byte {
	if id >= 0 && int(id) < len(tileDigits) {
		return tileDigits[id]
	}
	return '+'
}

// writeMapGrid writes the grid with the actor overlaid. With windowOnly set,
// tiles outside the camera window are shown as '#'.
func writeMapGrid(w io.Writer, grid *world.Grid, fi gameplay.FrameInfo, windowOnly bool) {
	for y := 0; y < grid.Rows(); y++ {
		line := make([]byte, grid.Cols())
		for x := range line {
			switch {
			case x == fi.GridX && y == fi.GridY:
				line[x] = '@'
			case windowOnly && !fi.Window.Contains(x, y):
				line[x] = '#'
			default:
				line[x] = tileSymbol(grid.At(x, y))
			}
		}
		fmt.Fprintf(w, "%s\n", line)
	}
}

// tileCounts lists how often each tile id occurs, as "id=count" pairs in
// id order.
func tileCounts(grid *world.Grid) string {
	counts := map[world.TileID]int{}
	grid.ForEachTile(func(x, y int, id world.TileID) {
		counts[id]++
	})
	ids := make([]world.TileID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d=%d", id, counts[id])
	}
	return strings.Join(parts, " ")
}

// WriteMapDump writes a debug dump of the map and the last frame: metadata,
// legend, the visible window and the full layout.
func WriteMapDump(w io.Writer, grid *world.Grid, fi gameplay.FrameInfo) {
	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "frame: %d\n", fi.Frame)
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "tile_counts: %s\n", tileCounts(grid))
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "actor: %d,%d\n", fi.GridX, fi.GridY)
	fmt.Fprintf(w, "actor_world: %g,%g\n", fi.World.X, fi.World.Y)
	fmt.Fprintf(w, "actor_bounds: 0..%d,0..%d\n", fi.MaxGridX, fi.MaxGridY)
	fmt.Fprintf(w, "camera_offset: %g,%g\n", fi.Offset.X, fi.Offset.Y)
	fmt.Fprintf(w, "window: x %d..%d y %d..%d\n", fi.Window.StartX, fi.Window.EndX, fi.Window.StartY, fi.Window.EndY)
	fmt.Fprintf(w, "viewport: %dx%d scale %g\n", fi.Viewport.Width, fi.Viewport.Height, fi.Viewport.Scale)
	fmt.Fprintf(w, "moves: %d\n", fi.Moves)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "0-9a-z = tile id  + = tile id 36 or above  # = outside camera window  @ = actor")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (camera window only) ---")
	writeMapGrid(w, grid, fi, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, grid, fi, false)
}
