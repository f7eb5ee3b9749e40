package renderer

import (
	"image"

	"tilewalk/pkg/engine/world"
)

// BlankImage is an Image with a size and no pixels, for headless use.
type BlankImage struct {
	W, H int
}

// Bounds returns the image rectangle anchored at the origin.
func (b BlankImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// DrawCommand is one recorded Draw call.
type DrawCommand struct {
	Image Image
	Src   image.Rectangle
	Dst   world.Vec2
}

// Recorder is a Sink that keeps the draw commands of the last frame.
type Recorder struct {
	Scale    float64
	Commands []DrawCommand
	Frames   int

	open bool
}

// Begin starts a new frame, discarding the previous one
func (r *Recorder) Begin(scale float64) {
	r.Scale = scale
	r.Commands = r.Commands[:0]
	r.open = true
}

// Draw records a draw command
func (r *Recorder) Draw(img Image, src image.Rectangle, dst world.Vec2) {
	r.Commands = append(r.Commands, DrawCommand{Image: img, Src: src, Dst: dst})
}

// End closes the frame
func (r *Recorder) End() {
	if r.open {
		r.Frames++
		r.open = false
	}
}

// DrawsOf returns the commands that used img.
func (r *Recorder) DrawsOf(img Image) []DrawCommand {
	var out []DrawCommand
	for _, c := range r.Commands {
		if c.Image == img {
			out = append(out, c)
		}
	}
	return out
}
