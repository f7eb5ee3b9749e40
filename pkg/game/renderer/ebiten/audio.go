package ebiten

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"tilewalk/pkg/game/assets"
)

const sampleRate = 44100

// stepSound plays a short blip each time the step counter advances.
type stepSound struct {
	ctx  *audio.Context
	blip []byte
	last int
}

// newStepSound returns nil unless audio is enabled. Audio is DISABLED by
// default; enable it with TILEWALK_ENABLE_AUDIO=1.
func newStepSound() *stepSound {
	if os.Getenv("TILEWALK_ENABLE_AUDIO") != "1" {
		return nil
	}
	return &stepSound{
		ctx:  audio.NewContext(sampleRate),
		blip: assets.Blip(sampleRate, 40, 660),
	}
}

// update plays the blip if steps moved on since the last call.
func (s *stepSound) update(steps int) {
	if s == nil {
		return
	}
	if steps != s.last {
		s.ctx.NewPlayerFromBytes(s.blip).Play()
	}
	s.last = steps
}
