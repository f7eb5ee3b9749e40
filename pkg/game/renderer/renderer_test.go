package renderer

import (
	"image"
	"testing"

	"tilewalk/pkg/engine/camera"
	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/state"
)

func TestSourceRect(t *testing.T) {
	tests := []struct {
		name string
		id   world.TileID
		want image.Rectangle
	}{
		{"first cell", 0, image.Rect(0, 0, 32, 32)},
		{"end of first row", 7, image.Rect(224, 0, 256, 32)},
		{"second row", 8, image.Rect(0, 32, 32, 64)},
		{"id 10 is cell (2,1)", 10, image.Rect(64, 32, 96, 64)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SourceRect(tc.id, 8, 32); got != tc.want {
				t.Errorf("SourceRect(%d) = %v, want %v", tc.id, got, tc.want)
			}
		})
	}
}

func TestSourceRectOutOfAtlasIsUnchecked(t *testing.T) {
	atlas := &BlankImage{W: 256, H: 64}
	// Ids 0..15 fit; 40 lands well below the atlas.
	got := SourceRect(40, 8, 32)
	if got.In(atlas.Bounds()) {
		t.Errorf("SourceRect(40) = %v, expected it to fall outside %v", got, atlas.Bounds())
	}
}

func TestAtlasCapacity(t *testing.T) {
	if got := AtlasCapacity(&BlankImage{W: 256, H: 64}, 32); got != 16 {
		t.Errorf("AtlasCapacity() = %d, want 16", got)
	}
}

func newTestGame(t *testing.T, startX, startY int) *state.Game {
	t.Helper()
	return state.NewGame(world.DefaultGrid(), 32, 8, 2, startX, startY)
}

var testViewport = camera.Viewport{Width: 960, Height: 640, Scale: 2}

func TestDrawScene_TilesThenActor(t *testing.T) {
	g := newTestGame(t, 7, 5)
	atlas := &BlankImage{W: 256, H: 64}
	sprite := &BlankImage{W: 32, H: 32}
	cam := camera.Compute(7, 5, testViewport, 32, g.Grid.Cols(), g.Grid.Rows())

	rec := &Recorder{}
	DrawScene(rec, g, cam, atlas, sprite)

	if rec.Scale != 2 {
		t.Errorf("Recorder.Scale = %v, want 2", rec.Scale)
	}
	if rec.Frames != 1 {
		t.Errorf("Recorder.Frames = %d, want 1", rec.Frames)
	}

	wantTiles := cam.Window.Width() * cam.Window.Height()
	if len(rec.Commands) != wantTiles+1 {
		t.Fatalf("recorded %d draws, want %d tiles + 1 actor", len(rec.Commands), wantTiles)
	}
	for i, c := range rec.Commands[:wantTiles] {
		if c.Image != Image(atlas) {
			t.Fatalf("draw %d used %v, want atlas", i, c.Image)
		}
	}

	last := rec.Commands[len(rec.Commands)-1]
	if last.Image != Image(sprite) {
		t.Fatalf("last draw used %v, want actor sprite", last.Image)
	}
	if last.Src != sprite.Bounds() {
		t.Errorf("actor src = %v, want whole sprite %v", last.Src, sprite.Bounds())
	}
	if last.Dst != (world.Vec2{X: 224, Y: 144}) {
		t.Errorf("actor dst = %v, want {224 144}", last.Dst)
	}
}

func TestDrawScene_TilePositionsAndSources(t *testing.T) {
	g := newTestGame(t, 0, 0)
	atlas := &BlankImage{W: 256, H: 64}
	sprite := &BlankImage{W: 32, H: 32}
	cam := camera.Compute(0, 0, testViewport, 32, g.Grid.Cols(), g.Grid.Rows())

	rec := &Recorder{}
	DrawScene(rec, g, cam, atlas, sprite)

	draws := rec.DrawsOf(atlas)
	if len(draws) == 0 {
		t.Fatal("no tiles drawn")
	}
	// With the actor on (0,0) the tile under it is drawn where the actor is.
	if draws[0].Dst != (world.Vec2{X: 224, Y: 144}) {
		t.Errorf("tile (0,0) dst = %v, want {224 144}", draws[0].Dst)
	}

	seen := map[world.Vec2]bool{}
	for _, d := range draws {
		x := int((d.Dst.X - cam.Offset.X) / 32)
		y := int((d.Dst.Y - cam.Offset.Y) / 32)
		if !cam.Window.Contains(x, y) {
			t.Errorf("drew tile (%d,%d) outside window %+v", x, y, cam.Window)
		}
		if want := SourceRect(g.Grid.At(x, y), 8, 32); d.Src != want {
			t.Errorf("tile (%d,%d) src = %v, want %v", x, y, d.Src, want)
		}
		if seen[d.Dst] {
			t.Errorf("tile at %v drawn twice", d.Dst)
		}
		seen[d.Dst] = true
	}
}

func TestDrawScene_EmptyWindowDrawsOnlyActor(t *testing.T) {
	g := newTestGame(t, 0, 0)
	atlas := &BlankImage{W: 256, H: 64}
	sprite := &BlankImage{W: 32, H: 32}
	cam := camera.Camera{Window: camera.Window{StartX: 15, StartY: 9, EndX: 15, EndY: 9}}

	rec := &Recorder{}
	DrawScene(rec, g, cam, atlas, sprite)
	if len(rec.Commands) != 1 || rec.Commands[0].Image != Image(sprite) {
		t.Errorf("draws = %+v, want only the actor", rec.Commands)
	}
}

func TestRecorderBeginResets(t *testing.T) {
	rec := &Recorder{}
	img := &BlankImage{W: 1, H: 1}
	rec.Begin(1)
	rec.Draw(img, img.Bounds(), world.Vec2{})
	rec.End()
	rec.Begin(3)
	rec.End()
	if len(rec.Commands) != 0 {
		t.Errorf("Commands after empty frame = %d, want 0", len(rec.Commands))
	}
	if rec.Frames != 2 || rec.Scale != 3 {
		t.Errorf("Frames = %d Scale = %v, want 2 and 3", rec.Frames, rec.Scale)
	}
}
