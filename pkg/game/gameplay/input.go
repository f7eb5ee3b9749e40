package gameplay

import (
	"tilewalk/pkg/engine/camera"
	engineinput "tilewalk/pkg/engine/input"
	"tilewalk/pkg/game/state"
)

// ProcessIntent applies one frame's resolved input to the game.
func ProcessIntent(g *state.Game, intent engineinput.Intent, vp camera.Viewport) {
	if intent.Quit {
		g.Quit()
	}

	MoveActor(g, intent.DX, intent.DY, vp)
	g.Moves += len(intent.Moves)
}
