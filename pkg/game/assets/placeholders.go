// Package assets generates stand-in images so the viewer runs without any
// art on disk.
package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Palette holds the fill colours of generated atlas cells. Cell i uses
// Palette[i % len(Palette)].
var Palette = []color.RGBA{
	{70, 65, 60, 255},    // stone
	{60, 55, 50, 255},    // dark stone
	{55, 50, 45, 255},    // cobble
	{130, 125, 115, 255}, // wall
	{110, 100, 90, 255},  // brick
	{100, 80, 60, 255},   // wood
	{60, 110, 60, 255},   // grass
	{50, 80, 150, 255},   // water
}

var (
	borderColor = color.RGBA{30, 28, 25, 255}
	actorColor  = color.RGBA{0, 255, 100, 255}
	actorEdge   = color.RGBA{0, 120, 50, 255}
)

// fillCell paints one tileSize square at (x, y) with a one pixel border.
func fillCell(img *image.RGBA, x, y, tileSize int, fill, border color.RGBA) {
	r := image.Rect(x, y, x+tileSize, y+tileSize)
	draw.Draw(img, r, &image.Uniform{border}, image.Point{}, draw.Src)
	if tileSize > 2 {
		draw.Draw(img, r.Inset(1), &image.Uniform{fill}, image.Point{}, draw.Src)
	}
}

// Atlas builds a tilesPerRow by rows grid of distinct tiles. Tile id n is
// at column n%tilesPerRow, row n/tilesPerRow.
func Atlas(tileSize, tilesPerRow, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileSize*tilesPerRow, tileSize*rows))
	for row := 0; row < rows; row++ {
		for col := 0; col < tilesPerRow; col++ {
			id := row*tilesPerRow + col
			fill := Palette[id%len(Palette)]
			// Darken later rows so every id in the sheet looks different.
			shade := uint8(min(row*12, 60))
			fill.R -= min(fill.R, shade)
			fill.G -= min(fill.G, shade)
			fill.B -= min(fill.B, shade)
			fillCell(img, col*tileSize, row*tileSize, tileSize, fill, borderColor)
		}
	}
	return img
}

// Sprite builds the actor image: a bordered square with a centre dot.
func Sprite(tileSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
	r := img.Bounds().Inset(tileSize / 8)
	draw.Draw(img, r, &image.Uniform{actorEdge}, image.Point{}, draw.Src)
	if r.Dx() > 2 {
		draw.Draw(img, r.Inset(1), &image.Uniform{actorColor}, image.Point{}, draw.Src)
	}

	c := tileSize / 2
	dot := image.Rect(c-tileSize/8, c-tileSize/8, c+tileSize/8, c+tileSize/8)
	draw.Draw(img, dot, &image.Uniform{actorEdge}, image.Point{}, draw.Src)
	return img
}

// RowsFor returns how many atlas rows are needed to hold ids 0..maxID.
func RowsFor(maxID, tilesPerRow int) int {
	if tilesPerRow <= 0 {
		return 1
	}
	return max(maxID/tilesPerRow+1, 1)
}
