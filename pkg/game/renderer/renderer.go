// Package renderer maps the visible part of a tile map to draw commands.
// Backends (ebiten, tui) implement Sink and Host.
package renderer

import (
	"image"

	"tilewalk/pkg/engine/camera"
	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/state"
)

// SourceRect returns the atlas rectangle of a tile id. The atlas is
// tilesPerRow cells wide and indexed row-major. Ids past the end of the atlas
// are not checked and yield a rectangle outside it.
func SourceRect(id world.TileID, tilesPerRow, tileSize int) image.Rectangle {
	col := int(id) % tilesPerRow
	row := int(id) / tilesPerRow
	x := col * tileSize
	y := row * tileSize
	return image.Rect(x, y, x+tileSize, y+tileSize)
}

// AtlasCapacity returns how many tile cells an atlas image holds.
func AtlasCapacity(atlas Image, tileSize int) int {
	b := atlas.Bounds()
	return (b.Dx() / tileSize) * (b.Dy() / tileSize)
}

// DrawScene draws every tile in the camera window, then the actor on top.
func DrawScene(sink Sink, g *state.Game, cam camera.Camera, atlas, sprite Image) {
	sink.Begin(g.Scale)
	defer sink.End()

	tileSize := g.TileSizeF()
	for y := cam.Window.StartY; y < cam.Window.EndY; y++ {
		for x := cam.Window.StartX; x < cam.Window.EndX; x++ {
			src := SourceRect(g.Grid.At(x, y), g.TilesPerRow, g.TileSize)
			dst := world.GridToWorld(x, y, tileSize).Add(cam.Offset)
			sink.Draw(atlas, src, dst)
		}
	}

	// Actor last so it is always above the terrain
	sink.Draw(sprite, sprite.Bounds(), g.Actor.Position().Add(cam.Offset))
}
