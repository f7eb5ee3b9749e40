package assets

import (
	"encoding/binary"
	"math"
)

// Blip returns durationMs of a fading sine tone as 16-bit little-endian
// stereo PCM, the raw format an Ebiten audio context plays.
func Blip(sampleRate, durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	buf := make([]byte, numSamples*4)

	amp := 0.2 // reduce volume
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		fade := 1 - float64(i)/float64(numSamples)
		v := int16(amp * fade * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
