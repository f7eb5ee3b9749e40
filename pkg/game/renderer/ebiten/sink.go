package ebiten

import (
	"fmt"
	"image"
	_ "image/png" // atlas and sprite files are PNG

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/assets"
	"tilewalk/pkg/game/renderer"
)

// Sink draws onto the Ebiten screen image of the current frame.
type Sink struct {
	target *ebiten.Image
	scale  float64
	op     ebiten.DrawImageOptions
}

// Begin starts a frame scaled by scale.
func (s *Sink) Begin(scale float64) {
	s.scale = scale
}

// Draw copies the src cell of img to dst, then applies the frame scale.
// Images that did not come from this package are skipped.
func (s *Sink) Draw(img renderer.Image, src image.Rectangle, dst world.Vec2) {
	eimg, ok := img.(*ebiten.Image)
	if !ok || s.target == nil {
		return
	}
	sub, ok := eimg.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	s.op.GeoM.Reset()
	s.op.GeoM.Translate(dst.X, dst.Y)
	s.op.GeoM.Scale(s.scale, s.scale)
	s.op.Filter = ebiten.FilterNearest
	s.target.DrawImage(sub, &s.op)
}

// End finishes the frame. Ebiten presents the screen itself.
func (s *Sink) End() {}

// LoadAssets loads the atlas and sprite from disk, or generates
// placeholders for empty paths.
func (e *Host) LoadAssets(spec renderer.AssetSpec) (atlas, sprite renderer.Image, err error) {
	if spec.AtlasPath == "" {
		atlas = ebiten.NewImageFromImage(assets.Atlas(spec.TileSize, spec.TilesPerRow, spec.AtlasRows))
	} else {
		img, _, err := ebitenutil.NewImageFromFile(spec.AtlasPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading tile atlas %s: %w", spec.AtlasPath, err)
		}
		atlas = img
	}

	if spec.SpritePath == "" {
		sprite = ebiten.NewImageFromImage(assets.Sprite(spec.TileSize))
	} else {
		img, _, err := ebitenutil.NewImageFromFile(spec.SpritePath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading actor sprite %s: %w", spec.SpritePath, err)
		}
		sprite = img
	}

	return atlas, sprite, nil
}
