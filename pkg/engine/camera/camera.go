// Package camera computes the per-frame view of a tile map: the offset that
// keeps the actor centered, the visible tile window used for culling, and the
// grid bounds the actor is clamped to.
package camera

import (
	"math"

	"tilewalk/pkg/engine/world"
)

// Viewport is the host's drawable area in device pixels and the uniform
// scale applied to everything drawn into it.
type Viewport struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
}

// LogicalSize returns the viewport size in world pixels (before scaling).
func (v Viewport) LogicalSize() (w, h float64) {
	return float64(v.Width) / v.Scale, float64(v.Height) / v.Scale
}

// Window is a rectangle of tile indices [StartX, EndX) × [StartY, EndY).
type Window struct {
	StartX int `json:"start_x"`
	StartY int `json:"start_y"`
	EndX   int `json:"end_x"`
	EndY   int `json:"end_y"`
}

// Width returns the number of columns in the window
func (w Window) Width() int {
	return w.EndX - w.StartX
}

// Height returns the number of rows in the window
func (w Window) Height() int {
	return w.EndY - w.StartY
}

// Empty reports whether the window contains no tiles.
func (w Window) Empty() bool {
	return w.Width() <= 0 || w.Height() <= 0
}

// Contains reports whether tile x/y is inside the window.
func (w Window) Contains(x, y int) bool {
	return x >= w.StartX && x < w.EndX && y >= w.StartY && y < w.EndY
}

// Camera is the derived view for one frame.
type Camera struct {
	// Offset is added to every world position before drawing.
	Offset world.Vec2
	// Window is the range of tiles to draw.
	Window Window
}

// Bounds returns the largest grid coordinates the actor may occupy.
// The limits follow the viewport's logical size, not the map's dimensions.
func Bounds(vp Viewport, tileSize float64) (maxGridX, maxGridY int) {
	lw, lh := vp.LogicalSize()
	maxGridX = int(math.Floor((lw - tileSize) / tileSize))
	maxGridY = int(math.Floor((lh - tileSize) / tileSize))
	// A viewport narrower than one tile still leaves cell 0 legal.
	return max(maxGridX, 0), max(maxGridY, 0)
}

// Clamp restricts a grid coordinate to [0, maxGridX] × [0, maxGridY].
func Clamp(gridX, gridY int, vp Viewport, tileSize float64) (int, int) {
	maxGridX, maxGridY := Bounds(vp, tileSize)
	return clampInt(gridX, 0, maxGridX), clampInt(gridY, 0, maxGridY)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// TileSpan returns how many tiles fit across the viewport, plus one extra on
// each side so partially visible edge tiles are still drawn while scrolling.
func TileSpan(vp Viewport, tileSize float64) (tilesX, tilesY int) {
	lw, lh := vp.LogicalSize()
	return int(math.Floor(lw/tileSize)) + 2, int(math.Floor(lh/tileSize)) + 2
}

// CenterOffset returns the translation that puts the tile at actorWorld in
// the middle of the viewport.
func CenterOffset(actorWorld world.Vec2, vp Viewport, tileSize float64) world.Vec2 {
	lw, lh := vp.LogicalSize()
	return world.Vec2{
		X: lw/2 - tileSize/2 - actorWorld.X,
		Y: lh/2 - tileSize/2 - actorWorld.Y,
	}
}

// VisibleWindow returns the tiles around grid position x/y that can appear
// on screen, clipped to a cols × rows map.
func VisibleWindow(gridX, gridY int, vp Viewport, tileSize float64, cols, rows int) Window {
	tilesX, tilesY := TileSpan(vp, tileSize)
	startX, endX := span(gridX, tilesX, cols)
	startY, endY := span(gridY, tilesY, rows)
	return Window{StartX: startX, StartY: startY, EndX: endX, EndY: endY}
}

// span centers n tiles on center and clips the result to [0, limit).
func span(center, n, limit int) (start, end int) {
	start = clampInt(center-n/2, 0, limit)
	end = clampInt(start+n, start, limit)
	return start, end
}

// Compute derives the camera for an actor at gridX/gridY on a cols × rows map.
func Compute(gridX, gridY int, vp Viewport, tileSize float64, cols, rows int) Camera {
	return Camera{
		Offset: CenterOffset(world.GridToWorld(gridX, gridY, tileSize), vp, tileSize),
		Window: VisibleWindow(gridX, gridY, vp, tileSize, cols, rows),
	}
}
