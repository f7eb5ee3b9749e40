package renderer

import (
	"image"

	"tilewalk/pkg/engine/camera"
	"tilewalk/pkg/engine/input"
	"tilewalk/pkg/engine/world"
)

// Image is a drawable source owned by a host backend: a tile atlas, an
// actor sprite, or a glyph sheet for the terminal.
type Image interface {
	Bounds() image.Rectangle
}

// Sink accepts draw commands for one frame.
// Implementations can include Ebiten, the terminal, or a recorder for tests.
type Sink interface {
	// Begin starts a frame. Every destination is multiplied by scale.
	Begin(scale float64)

	// Draw copies the src rectangle of img to dst, in world pixels after the
	// camera offset. Sampling is nearest-neighbour.
	Draw(img Image, src image.Rectangle, dst world.Vec2)

	// End finishes the frame.
	End()
}

// Scene is what a host drives: one update and one draw per frame.
type Scene interface {
	// Update consumes this frame's key state and returns false when the
	// scene wants the host to stop.
	Update(keys input.Snapshot, vp camera.Viewport) bool

	// Draw renders the frame into sink.
	Draw(sink Sink, vp camera.Viewport)
}

// AssetSpec says where to find the tile atlas and actor sprite. Empty paths
// ask the host for generated placeholders.
type AssetSpec struct {
	AtlasPath   string
	SpritePath  string
	TileSize    int
	TilesPerRow int
	AtlasRows   int
}

// Host owns the window or terminal, the run loop and input polling.
type Host interface {
	// LoadAssets returns the atlas and sprite in the host's image type.
	LoadAssets(spec AssetSpec) (atlas, sprite Image, err error)

	// Run blocks, driving scene until it stops or the host is closed.
	Run(scene Scene) error
}
