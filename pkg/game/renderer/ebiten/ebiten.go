// Package ebiten runs a renderer.Scene in a desktop window using Ebiten.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/leonelquinteros/gotext"

	"tilewalk/pkg/engine/camera"
	engineinput "tilewalk/pkg/engine/input"
	"tilewalk/pkg/game/renderer"
)

// Host is the windowed renderer.Host. It implements ebiten.Game.
type Host struct {
	// windowWidth and windowHeight for the initial game window
	windowWidth  int
	windowHeight int

	scale        float64
	defaultScale float64

	// outsideWidth and outsideHeight are the last sizes Ebiten gave Layout.
	outsideWidth  int
	outsideHeight int

	provider engineinput.Provider
	scene    renderer.Scene
	sink     *Sink

	// Status, if set, is printed in the top-left corner each frame.
	Status func() string

	// Steps, if set, reports how many moves the scene has made. A blip
	// plays whenever it changes and audio is enabled.
	Steps func() int
	sound *stepSound

	windowOpenedLogged bool
}

// New creates a host for a window of width x height pixels at the given zoom.
func New(width, height int, scale float64) *Host {
	return &Host{
		windowWidth:  width,
		windowHeight: height,
		scale:        scale,
		defaultScale: scale,
		provider:     engineinput.ProviderFunc(pollKeys),
		sink:         &Sink{},
	}
}

// Viewport returns the current window size and zoom. The size is whatever
// Ebiten last reported, falling back to the configured window before the
// first Layout call.
func (e *Host) Viewport() camera.Viewport {
	w, h := e.outsideWidth, e.outsideHeight
	if w == 0 || h == 0 {
		w, h = e.windowWidth, e.windowHeight
	}
	return camera.Viewport{Width: w, Height: h, Scale: e.scale}
}

// Update polls input and steps the scene (Ebiten interface)
func (e *Host) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleZoom()

	if !e.scene.Update(e.provider.Poll(), e.Viewport()) {
		return ebiten.Termination
	}
	if e.Steps != nil {
		e.sound.update(e.Steps())
	}
	return nil
}

// Draw renders the scene to the screen (Ebiten interface)
func (e *Host) Draw(screen *ebiten.Image) {
	e.sink.target = screen
	e.scene.Draw(e.sink, e.Viewport())

	if e.Status != nil {
		ebitenutil.DebugPrintAt(screen, e.Status(), 4, 4)
	}
}

// Layout keeps the logical screen the same size as the window so the
// viewport always tracks resizes (Ebiten interface)
func (e *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.outsideWidth = outsideWidth
	e.outsideHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the scene stops or the window is closed.
func (e *Host) Run(scene renderer.Scene) error {
	e.scene = scene
	e.sound = newStepSound()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
