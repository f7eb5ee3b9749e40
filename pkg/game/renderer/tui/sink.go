package tui

import (
	"bufio"
	"image"
	"io"
	"math"

	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/renderer"
)

// Sink buffers one frame of glyphs and writes it to the terminal on End.
type Sink struct {
	out      io.Writer
	tileSize int
	scale    float64

	cols, rows int
	cells      [][]Glyph

	// Status is written below the map.
	Status string
}

// NewSink creates a sink writing to out.
func NewSink(out io.Writer, tileSize int) *Sink {
	return &Sink{out: out, tileSize: tileSize, scale: 1}
}

// Resize sets the frame size in character cells.
func (s *Sink) Resize(cols, rows int) {
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols, s.rows = cols, rows
	s.cells = make([][]Glyph, rows)
	for y := range s.cells {
		s.cells[y] = make([]Glyph, cols)
	}
}

// Begin clears the buffer.
func (s *Sink) Begin(scale float64) {
	s.scale = scale
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankGlyph
		}
	}
}

// Draw places the glyph for src at the cell containing dst. Anything that
// lands off screen or is not a glyph image is dropped.
func (s *Sink) Draw(img renderer.Image, src image.Rectangle, dst world.Vec2) {
	gi, ok := img.(glyphImage)
	if !ok {
		return
	}
	x, y := s.cellAt(dst)
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.cells[y][x] = gi.GlyphAt(src)
}

func (s *Sink) cellAt(dst world.Vec2) (x, y int) {
	ts := float64(s.tileSize) / s.scale
	return int(math.Floor(dst.X / ts)), int(math.Floor(dst.Y / ts))
}

// End writes the frame. Raw mode needs explicit carriage returns.
func (s *Sink) End() {
	w := bufio.NewWriter(s.out)
	w.WriteString(cursorHome)
	for _, row := range s.cells {
		for _, g := range row {
			w.WriteString(g.Render())
		}
		w.WriteString("\x1b[K\r\n")
	}
	w.WriteString("\x1b[K" + s.Status + "\r\n")
	w.Flush()
}
