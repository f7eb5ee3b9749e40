// Package tui runs a renderer.Scene in a terminal. Every tile is drawn as a
// pair of coloured characters.
package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"tilewalk/pkg/engine/camera"
	"tilewalk/pkg/engine/input"
	"tilewalk/pkg/engine/terminal"
	"tilewalk/pkg/game/renderer"
)

const (
	cellWidth   = 2 // characters per tile
	statusLines = 2

	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// TUIRenderer is the terminal renderer.Host.
type TUIRenderer struct {
	tileSize int
	fps      int
	out      io.Writer
	sink     *Sink

	// Status, if set, is printed under the map each frame.
	Status func() string
}

// New creates a terminal host drawing tileSize-pixel tiles at fps frames
// per second.
func New(tileSize, fps int) *TUIRenderer {
	return &TUIRenderer{
		tileSize: tileSize,
		fps:      fps,
		out:      os.Stdout,
		sink:     NewSink(os.Stdout, tileSize),
	}
}

// Viewport sizes the camera so one tile maps to one character cell. The
// terminal is re-measured every frame.
func (t *TUIRenderer) Viewport() camera.Viewport {
	cols, rows := terminal.CellGrid(cellWidth, statusLines)
	t.sink.Resize(cols, rows)
	return camera.Viewport{Width: cols * t.tileSize, Height: rows * t.tileSize, Scale: 1}
}

// LoadAssets returns glyph sheets. Image paths are ignored since a terminal
// cannot show them.
func (t *TUIRenderer) LoadAssets(spec renderer.AssetSpec) (atlas, sprite renderer.Image, err error) {
	return NewGlyphSheet(spec.TileSize, spec.TilesPerRow, spec.AtlasRows), NewActorGlyph(spec.TileSize), nil
}

// Run switches the terminal to raw mode and drives scene on a ticker until
// it stops or stdin closes.
func (t *TUIRenderer) Run(scene renderer.Scene) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Fprint(t.out, hideCursor+clearScreen)
	defer fmt.Fprint(t.out, showCursor+"\r\n")

	codes := make(chan string, 64)
	done := make(chan struct{})
	defer close(done)
	go readKeys(input.NewKeyReader(os.Stdin), codes, done)

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	for range ticker.C {
		keys, open := drainKeys(codes)
		vp := t.Viewport()
		if !scene.Update(keys, vp) || !open {
			return nil
		}

		if t.Status != nil {
			t.sink.Status = t.Status()
		}
		scene.Draw(t.sink, vp)
	}
	return nil
}

// readKeys feeds key codes into codes until the reader fails or done is
// closed, then closes codes. A read already blocked on stdin only notices
// done once the next key arrives.
func readKeys(kr *input.KeyReader, codes chan<- string, done <-chan struct{}) {
	defer close(codes)
	for {
		code, err := kr.ReadCode()
		if err != nil {
			return
		}
		if code == "" {
			continue
		}
		select {
		case codes <- code:
		case <-done:
			return
		}
	}
}

// drainKeys collects every code waiting in codes into one snapshot. A key
// is therefore down for exactly the frame its byte arrived in. open is false
// once the reader has stopped.
func drainKeys(codes <-chan string) (keys input.Snapshot, open bool) {
	var seen []string
	for {
		select {
		case code, ok := <-codes:
			if !ok {
				return input.Collect(seen), false
			}
			seen = append(seen, code)
		default:
			return input.Collect(seen), true
		}
	}
}
