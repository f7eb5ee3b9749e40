package gameplay

import (
	"testing"

	"tilewalk/pkg/engine/camera"
	engineinput "tilewalk/pkg/engine/input"
	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/renderer"
	"tilewalk/pkg/game/state"
)

// defaultViewport is the 960x640 window at 2x zoom.
var defaultViewport = camera.Viewport{Width: 960, Height: 640, Scale: 2}

// makeLoop creates a loop on the built-in 15x9 map with the actor at x/y.
func makeLoop(t *testing.T, x, y int) *Loop {
	t.Helper()
	g := state.NewGame(world.DefaultGrid(), 32, 8, 2, x, y)
	return NewLoop(g, &renderer.BlankImage{W: 256, H: 64}, &renderer.BlankImage{W: 32, H: 32})
}

func press(keys ...engineinput.Key) engineinput.Snapshot {
	return engineinput.NewSnapshot(keys...)
}

func assertGrid(t *testing.T, g *state.Game, wantX, wantY int) {
	t.Helper()
	if g.Actor.GridX != wantX || g.Actor.GridY != wantY {
		t.Errorf("actor at (%d,%d), want (%d,%d)", g.Actor.GridX, g.Actor.GridY, wantX, wantY)
	}
	want := world.Vec2{X: float64(wantX * g.TileSize), Y: float64(wantY * g.TileSize)}
	if got := g.Actor.Position(); got != want {
		t.Errorf("actor world position = %v, want %v", got, want)
	}
}

func TestUpdate_PressUpOnce(t *testing.T) {
	l := makeLoop(t, 7, 5)
	l.Update(press(engineinput.KeyUp), defaultViewport)
	assertGrid(t, l.Game, 7, 4)
}

func TestUpdate_HoldUpTenFrames(t *testing.T) {
	l := makeLoop(t, 7, 5)
	for i := 0; i < 10; i++ {
		l.Update(press(engineinput.KeyUp), defaultViewport)
	}
	assertGrid(t, l.Game, 7, 4)
	if l.Game.Frame != 10 {
		t.Errorf("Frame = %d, want 10", l.Game.Frame)
	}
}

func TestUpdate_ReleaseAndPressAgain(t *testing.T) {
	l := makeLoop(t, 7, 5)
	frames := []engineinput.Snapshot{
		press(engineinput.KeyUp),
		press(),
		press(engineinput.KeyUp),
		press(engineinput.KeyUp),
	}
	for _, f := range frames {
		l.Update(f, defaultViewport)
	}
	assertGrid(t, l.Game, 7, 3)
	if l.Game.Moves != 2 {
		t.Errorf("Moves = %d, want 2", l.Game.Moves)
	}
}

func TestUpdate_AllFourDirections(t *testing.T) {
	dirs := []struct {
		name         string
		key          engineinput.Key
		wantX, wantY int
	}{
		{"Up", engineinput.KeyUp, 7, 4},
		{"Down", engineinput.KeyDown, 7, 6},
		{"Left", engineinput.KeyLeft, 6, 5},
		{"Right", engineinput.KeyRight, 8, 5},
	}
	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			l := makeLoop(t, 7, 5)
			l.Update(press(d.key), defaultViewport)
			assertGrid(t, l.Game, d.wantX, d.wantY)
		})
	}
}

func TestUpdate_Diagonal(t *testing.T) {
	l := makeLoop(t, 7, 5)
	l.Update(press(engineinput.KeyDown, engineinput.KeyLeft), defaultViewport)
	assertGrid(t, l.Game, 6, 6)
}

func TestUpdate_ClampsAtViewportBounds(t *testing.T) {
	tests := []struct {
		name         string
		startX       int
		startY       int
		key          engineinput.Key
		wantX, wantY int
	}{
		{"left edge", 0, 5, engineinput.KeyLeft, 0, 5},
		{"top edge", 7, 0, engineinput.KeyUp, 7, 0},
		{"right bound", 14, 5, engineinput.KeyRight, 14, 5},
		// maxGridY comes from the viewport (9), one past the map's last row (8).
		{"bottom bound past map", 7, 8, engineinput.KeyDown, 7, 9},
		{"bottom bound", 7, 9, engineinput.KeyDown, 7, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := makeLoop(t, tc.startX, tc.startY)
			l.Update(press(tc.key), defaultViewport)
			assertGrid(t, l.Game, tc.wantX, tc.wantY)
		})
	}
}

func TestUpdate_StartOutsideBoundsIsPulledIn(t *testing.T) {
	l := makeLoop(t, 40, -3)
	l.Update(press(), defaultViewport)
	assertGrid(t, l.Game, 14, 0)
}

func TestUpdate_QuitStopsLoop(t *testing.T) {
	l := makeLoop(t, 7, 5)
	if !l.Update(press(), defaultViewport) {
		t.Fatal("Update() = false before exit was pressed")
	}
	if l.Update(press(engineinput.KeyExit), defaultViewport) {
		t.Error("Update(exit) = true, want false")
	}
	assertGrid(t, l.Game, 7, 5)
}

func TestUpdate_GamepadBackQuits(t *testing.T) {
	l := makeLoop(t, 7, 5)
	if l.Update(press(engineinput.KeyBack), defaultViewport) {
		t.Error("Update(back) = true, want false")
	}
}

func TestUpdate_WorldPositionInvariant(t *testing.T) {
	l := makeLoop(t, 7, 5)
	keys := []engineinput.Key{
		engineinput.KeyUp, engineinput.KeyRight, engineinput.KeyRight, engineinput.KeyDown,
		engineinput.KeyLeft, engineinput.KeyUp, engineinput.KeyUp, engineinput.KeyUp,
	}
	for i := 0; i < 200; i++ {
		k := keys[i%len(keys)]
		if i%3 == 0 {
			l.Update(press(), defaultViewport)
			continue
		}
		l.Update(press(k), defaultViewport)
		g := l.Game
		want := world.GridToWorld(g.Actor.GridX, g.Actor.GridY, g.TileSizeF())
		if got := g.Actor.Position(); got != want {
			t.Fatalf("frame %d: world position %v, want %v", i, got, want)
		}
	}
}

func TestDraw_ReportsFrame(t *testing.T) {
	l := makeLoop(t, 7, 5)
	var got FrameInfo
	calls := 0
	l.OnFrame = func(fi FrameInfo) {
		got = fi
		calls++
	}

	l.Update(press(engineinput.KeyUp), defaultViewport)
	rec := &renderer.Recorder{}
	l.Draw(rec, defaultViewport)

	if calls != 1 {
		t.Fatalf("OnFrame called %d times, want 1", calls)
	}
	if got.GridX != 7 || got.GridY != 4 {
		t.Errorf("FrameInfo grid = (%d,%d), want (7,4)", got.GridX, got.GridY)
	}
	if got.MaxGridX != 14 || got.MaxGridY != 9 {
		t.Errorf("FrameInfo bounds = (%d,%d), want (14,9)", got.MaxGridX, got.MaxGridY)
	}
	if got.Frame != 1 {
		t.Errorf("FrameInfo.Frame = %d, want 1", got.Frame)
	}
	if rec.Frames != 1 || len(rec.Commands) == 0 {
		t.Errorf("recorder got %d frames and %d commands", rec.Frames, len(rec.Commands))
	}
}
