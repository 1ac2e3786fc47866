package audio

import (
	"encoding/binary"

	"github.com/chewxy/math32"
)

const sampleRate = 22050

type tone struct {
	from, to float32 // Hz, swept linearly
	seconds  float32
	gain     float32
}

var tones = map[Cue]tone{
	CueActivation: {from: 660, to: 990, seconds: 0.45, gain: 0.5},
	CueShot:       {from: 880, to: 440, seconds: 0.08, gain: 0.35},
	CueHit:        {from: 220, to: 160, seconds: 0.12, gain: 0.5},
	CueLand:       {from: 110, to: 80, seconds: 0.1, gain: 0.6},
}

// toneFor synthesizes 16-bit mono PCM for a cue. Unknown cues get nil.
func toneFor(cue Cue) []byte {
	t, ok := tones[cue]
	if !ok {
		return nil
	}
	n := int(t.seconds * sampleRate)
	out := make([]byte, 2*n)
	phase := float32(0)
	for i := 0; i < n; i++ {
		progress := float32(i) / float32(n)
		freq := t.from + (t.to-t.from)*progress
		phase += 2 * math32.Pi * freq / sampleRate
		// Short attack, linear release.
		env := math32.Min(1, float32(i)/64) * (1 - progress)
		v := int16(math32.Sin(phase) * env * t.gain * 32767)
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}
