package gameplay

import (
	"tilewalk/pkg/engine/camera"
	engineinput "tilewalk/pkg/engine/input"
	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/renderer"
	"tilewalk/pkg/game/state"
)

// FrameInfo describes what one frame showed.
type FrameInfo struct {
	Frame    uint64          `json:"frame"`
	GridX    int             `json:"grid_x"`
	GridY    int             `json:"grid_y"`
	World    world.Vec2      `json:"world"`
	Offset   world.Vec2      `json:"offset"`
	Window   camera.Window   `json:"window"`
	Viewport camera.Viewport `json:"viewport"`
	MaxGridX int             `json:"max_grid_x"`
	MaxGridY int             `json:"max_grid_y"`
	Moves    int             `json:"moves"`
}

// Loop drives a Game one frame at a time. It implements renderer.Scene.
type Loop struct {
	Game *state.Game

	atlas  renderer.Image
	sprite renderer.Image

	// prev is the key state of the previous update, compared against the
	// current one to find press edges.
	prev engineinput.Snapshot

	// OnFrame, if set, is called after each draw.
	OnFrame func(FrameInfo)
}

// NewLoop creates a loop for g drawing with the given atlas and actor sprite
func NewLoop(g *state.Game, atlas, sprite renderer.Image) *Loop {
	return &Loop{
		Game:   g,
		atlas:  atlas,
		sprite: sprite,
		prev:   engineinput.NewSnapshot(),
	}
}

// Update runs the input, movement and clamp steps. The zoom is taken from
// vp each frame. It returns false once the game has been asked to exit.
func (l *Loop) Update(keys engineinput.Snapshot, vp camera.Viewport) bool {
	l.Game.Scale = vp.Scale

	intent := engineinput.Resolve(l.prev, keys)
	ProcessIntent(l.Game, intent, vp)
	l.prev = keys
	l.Game.Frame++
	return l.Game.Running
}

// Camera computes the camera for the current actor position.
func (l *Loop) Camera(vp camera.Viewport) camera.Camera {
	g := l.Game
	return camera.Compute(g.Actor.GridX, g.Actor.GridY, vp, g.TileSizeF(), g.Grid.Cols(), g.Grid.Rows())
}

// Draw renders the visible tiles and the actor into sink.
func (l *Loop) Draw(sink renderer.Sink, vp camera.Viewport) {
	l.Game.Scale = vp.Scale
	cam := l.Camera(vp)
	renderer.DrawScene(sink, l.Game, cam, l.atlas, l.sprite)

	if l.OnFrame != nil {
		l.OnFrame(Describe(l.Game, cam, vp))
	}
}

// Describe summarizes the game and camera state for one frame.
func Describe(g *state.Game, cam camera.Camera, vp camera.Viewport) FrameInfo {
	maxX, maxY := camera.Bounds(vp, g.TileSizeF())
	return FrameInfo{
		Frame:    g.Frame,
		GridX:    g.Actor.GridX,
		GridY:    g.Actor.GridY,
		World:    g.Actor.Position(),
		Offset:   cam.Offset,
		Window:   cam.Window,
		Viewport: vp,
		MaxGridX: maxX,
		MaxGridY: maxY,
		Moves:    g.Moves,
	}
}
