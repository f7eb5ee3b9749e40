package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "tilewalk/pkg/engine/input"
	"tilewalk/pkg/game/config"
)

const (
	minScale  = 1
	maxScale  = 8
	scaleStep = 1
)

// keyCodes maps Ebiten keys to the device codes understood by the input
// bindings.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyQ:          "q",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyEscape:     "escape",
}

// gamepadCodes maps standard-layout gamepad buttons to device codes.
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:    "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom: "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:   "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:  "gamepad_dpad_right",
	ebiten.StandardGamepadButtonCenterLeft: "gamepad_back",
}

// pollKeys reads the keyboard and every connected gamepad into a snapshot
// of held keys. Edge detection happens later, in the input resolver.
func pollKeys() engineinput.Snapshot {
	var codes []string

	for key, code := range keyCodes {
		if ebiten.IsKeyPressed(key) {
			codes = append(codes, code)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && ebiten.IsKeyPressed(ebiten.KeyC) {
		codes = append(codes, "ctrl_c")
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range gamepadCodes {
			if ebiten.IsStandardGamepadButtonPressed(id, button) {
				codes = append(codes, code)
			}
		}
	}

	return engineinput.Collect(codes)
}

// handleZoom handles =/- for zoom adjustment
func (e *Host) handleZoom() {
	// = or + to zoom in
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setScale(e.scale + scaleStep)
	}
	// - to zoom out
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setScale(e.scale - scaleStep)
	}
	// 0 to reset
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setScale(e.defaultScale)
	}
}

func (e *Host) setScale(scale float64) {
	scale = min(max(scale, minScale), maxScale)
	if scale == e.scale {
		return
	}
	e.scale = scale
	e.saveZoomPreference()
}

// saveZoomPreference saves the current zoom to preferences
func (e *Host) saveZoomPreference() {
	cfg := config.Current()
	if err := cfg.SetScale(e.scale); err != nil {
		log.Printf("Warning: could not save preferences: %v", err)
	}
}
