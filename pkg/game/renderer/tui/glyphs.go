package tui

import (
	"image"

	"github.com/gookit/color"
)

// Glyph is one tile as it appears in the terminal.
type Glyph struct {
	Text  string
	Style color.Style
}

// Render returns the glyph text with its colours applied.
func (g Glyph) Render() string {
	return g.Style.Sprint(g.Text)
}

var blankGlyph = Glyph{Text: "  "}

// tileGlyphs are assigned to tile ids in order, wrapping around.
var tileGlyphs = []Glyph{
	{"..", color.Style{color.FgGray}},
	{",,", color.Style{color.FgGreen}},
	{"::", color.Style{color.FgYellow}},
	{"##", color.Style{color.FgWhite, color.OpBold}},
	{"==", color.Style{color.FgRed}},
	{"~~", color.Style{color.FgBlue, color.OpBold}},
	{"\"\"", color.Style{color.FgGreen, color.OpBold}},
	{"++", color.Style{color.FgMagenta}},
}

// glyphImage is a renderer.Image that can say which glyph a source rect picks.
type glyphImage interface {
	Bounds() image.Rectangle
	GlyphAt(src image.Rectangle) Glyph
}

// GlyphSheet stands in for a tile atlas. It has the atlas' pixel size so
// source rects computed for a real atlas select the same cell here.
type GlyphSheet struct {
	tileSize    int
	tilesPerRow int
	rows        int
}

// NewGlyphSheet creates a sheet of tilesPerRow x rows cells.
func NewGlyphSheet(tileSize, tilesPerRow, rows int) *GlyphSheet {
	return &GlyphSheet{tileSize: tileSize, tilesPerRow: tilesPerRow, rows: max(rows, 1)}
}

// Bounds returns the pixel size of the equivalent atlas.
func (s *GlyphSheet) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.tilesPerRow*s.tileSize, s.rows*s.tileSize)
}

// GlyphAt returns the glyph of the cell whose top-left corner is src.Min.
// Cells outside the sheet are blank.
func (s *GlyphSheet) GlyphAt(src image.Rectangle) Glyph {
	if !src.Min.In(s.Bounds()) {
		return blankGlyph
	}
	id := (src.Min.Y/s.tileSize)*s.tilesPerRow + src.Min.X/s.tileSize
	return tileGlyphs[id%len(tileGlyphs)]
}

// ActorGlyph stands in for the actor sprite.
type ActorGlyph struct {
	tileSize int
}

// NewActorGlyph creates the actor image for tileSize-pixel tiles.
func NewActorGlyph(tileSize int) *ActorGlyph {
	return &ActorGlyph{tileSize: tileSize}
}

// Bounds returns one tile.
func (a *ActorGlyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.tileSize, a.tileSize)
}

// GlyphAt always returns the player icon.
func (a *ActorGlyph) GlyphAt(image.Rectangle) Glyph {
	return Glyph{Text: "@ ", Style: color.Style{color.FgGreen, color.BgBlack, color.OpBold}}
}
