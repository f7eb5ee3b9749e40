// Package gameplay runs the per-frame update and draw steps for the actor
// and its camera.
package gameplay

import (
	"tilewalk/pkg/engine/camera"
	"tilewalk/pkg/game/state"
)

// MoveActor applies a grid delta and clamps the result to the bounds derived
// from the viewport. A zero delta still clamps, so a shrinking viewport pulls
// the actor back in.
func MoveActor(g *state.Game, dx, dy int, vp camera.Viewport) {
	x, y := camera.Clamp(g.Actor.GridX+dx, g.Actor.GridY+dy, vp, g.TileSizeF())
	g.SetActorGrid(x, y)
}
