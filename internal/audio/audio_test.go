package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"astroforge/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListenerRightHanded(t *testing.T) {
	l := newListener(rl.Vector3{}, rl.Vector3{Z: -2}, rl.Vector3{Y: 1})

	assert.InDelta(t, -1, l.Forward.Z, 1e-6)
	assert.InDelta(t, 1, l.Right.X, 1e-6, "looking down -Z, right is +X")
}

func TestNewListenerDegenerateForward(t *testing.T) {
	l := newListener(rl.Vector3{}, rl.Vector3{}, rl.Vector3{Y: 1})
	assert.Equal(t, rl.Vector3{Z: -1}, l.Forward)
}

func TestSpatialize(t *testing.T) {
	l := newListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1})

	t.Run("on top of the listener", func(t *testing.T) {
		v, pan := spatialize(l, rl.Vector3{}, 1)
		assert.Equal(t, float32(1), v)
		assert.Equal(t, float32(0.5), pan)
	})
	t.Run("right side", func(t *testing.T) {
		v, pan := spatialize(l, rl.Vector3{X: 10}, 1)
		assert.InDelta(t, 0.8, v, 1e-6)
		assert.InDelta(t, 1, pan, 1e-6)
	})
	t.Run("left side", func(t *testing.T) {
		_, pan := spatialize(l, rl.Vector3{X: -10}, 1)
		assert.InDelta(t, 0, pan, 1e-6)
	})
	t.Run("behind is muffled off axis", func(t *testing.T) {
		front, _ := spatialize(l, rl.Vector3{Z: -10}, 1)
		back, _ := spatialize(l, rl.Vector3{Z: 10}, 1)
		assert.InDelta(t, 0.8, front, 1e-6)
		assert.InDelta(t, 0.8, back, 1e-6, "directly behind keeps full weight")

		side, _ := spatialize(l, rl.Vector3{X: 6, Z: 8}, 1)
		assert.Less(t, side, float32(0.8))
	})
	t.Run("out of range", func(t *testing.T) {
		v, _ := spatialize(l, rl.Vector3{X: 60}, 1)
		assert.Zero(t, v)
	})
}

func TestDisabledManagerIsSilent(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	m := New(cfg, nil)

	assert.NoError(t, m.Open())
	m.Play(CueShot)
	m.PlayAt(CueHit, rl.Vector3{X: 1})
	m.Close()
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "activation", CueActivation.String())
	assert.Equal(t, "unknown", Cue(42).String())
}

func TestMissingFilesFallBackToTones(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Activation = filepath.Join(t.TempDir(), "missing.ogg")
	cfg.Shot = ""
	m := New(cfg, nil)

	srcs := m.sources()

	require.Len(t, srcs, 4)
	act := srcs[CueActivation]
	assert.Empty(t, act.path)
	assert.NotEmpty(t, act.tone, "activation stays playable without its file")
	assert.NotEmpty(t, srcs[CueShot].tone)
}

func TestExistingFileIsLoadedFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "land.ogg")
	require.NoError(t, os.WriteFile(path, []byte("OggS"), 0o644))
	cfg := config.Default().Audio
	cfg.Land = path

	src := New(cfg, nil).sources()[CueLand]

	assert.Equal(t, path, src.path)
	assert.Nil(t, src.tone)
}

func TestToneFor(t *testing.T) {
	for _, cue := range []Cue{CueActivation, CueShot, CueHit, CueLand} {
		t.Run(cue.String(), func(t *testing.T) {
			pcm := toneFor(cue)
			require.NotEmpty(t, pcm)
			assert.Equal(t, 2*int(tones[cue].seconds*sampleRate), len(pcm))

			var peak int16
			for i := 0; i < len(pcm); i += 2 {
				v := int16(binary.LittleEndian.Uint16(pcm[i:]))
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
			assert.Positive(t, peak, "tone is not silent")
			assert.Zero(t, int16(binary.LittleEndian.Uint16(pcm[0:])), "attack starts at zero")
		})
	}
	assert.Nil(t, toneFor(Cue(42)))
}
