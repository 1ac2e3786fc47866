package audio

import (
	"os"
	"sync"

	"astroforge/internal/config"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Cue names one of the game's sound effects.
type Cue int

const (
	CueActivation Cue = iota
	CueShot
	CueHit
	CueLand
)

func (c Cue) String() string {
	switch c {
	case CueActivation:
		return "activation"
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueLand:
		return "land"
	}
	return "unknown"
}

// MaxDistance is where positional cues fade to silence.
const MaxDistance = 50

var ErrNoDevice = errors.New("audio: device not ready")

// Listener is the ear of the player.
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Manager plays cues through the raylib audio device.
type Manager struct {
	mu       sync.Mutex
	paths    map[Cue]string
	sounds   map[Cue]rl.Sound
	listener Listener
	volume   float32
	enabled  bool
	logger   *zap.Logger
}

func New(cfg config.Audio, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		paths: map[Cue]string{
			CueActivation: cfg.Activation,
			CueShot:       cfg.Shot,
			CueHit:        cfg.Hit,
			CueLand:       cfg.Land,
		},
		sounds:   make(map[Cue]rl.Sound),
		listener: Listener{Forward: rl.Vector3{Z: -1}, Right: rl.Vector3{X: 1}},
		volume:   cfg.Volume,
		enabled:  cfg.Enabled,
		logger:   logger.Named("audio"),
	}
}

// Open starts the audio device and loads every cue. A cue whose file is
// missing or unreadable is logged and plays a generated tone instead.
func (m *Manager) Open() error {
	if !m.enabled {
		return nil
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		m.enabled = false
		return ErrNoDevice
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for cue, src := range m.sources() {
		if src.path != "" {
			sound := rl.LoadSound(src.path)
			if rl.IsSoundValid(sound) {
				m.sounds[cue] = sound
				continue
			}
			m.logger.Warn("sound not loaded, using tone", zap.Stringer("cue", cue), zap.String("path", src.path))
			src.tone = toneFor(cue)
		}
		if len(src.tone) == 0 {
			continue
		}
		wave := rl.NewWave(uint32(len(src.tone)/2), sampleRate, 16, 1, src.tone)
		m.sounds[cue] = rl.LoadSoundFromWave(wave)
	}
	m.logger.Info("audio ready", zap.Int("sounds", len(m.sounds)))
	return nil
}

// source is where a cue's samples come from: a file, or a generated tone
// when the file is missing.
type source struct {
	path string
	tone []byte
}

func (m *Manager) sources() map[Cue]source {
	out := make(map[Cue]source, len(m.paths))
	for cue, path := range m.paths {
		if path != "" {
			if _, err := os.Stat(path); err == nil {
				out[cue] = source{path: path}
				continue
			}
			m.logger.Warn("sound file missing, using tone", zap.Stringer("cue", cue), zap.String("path", path))
		}
		out[cue] = source{tone: toneFor(cue)}
	}
	return out
}

// Close unloads every sound and shuts the device down.
func (m *Manager) Close() {
	if !m.enabled {
		return
	}
	m.mu.Lock()
	for _, sound := range m.sounds {
		rl.UnloadSound(sound)
	}
	m.sounds = make(map[Cue]rl.Sound)
	m.mu.Unlock()
	rl.CloseAudioDevice()
}

// SetListener updates the listener position and orientation.
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = newListener(pos, forward, up)
}

func newListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos, Forward: rl.Vector3{Z: -1}, Right: rl.Vector3{X: 1}}
	if n := rl.Vector3Length(forward); n > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1/n)
	}
	// up x forward points left for a right-handed view, so flip it.
	right := rl.Vector3Negate(rl.Vector3CrossProduct(up, l.Forward))
	if n := rl.Vector3Length(right); n > 0.001 {
		l.Right = rl.Vector3Scale(right, 1/n)
	}
	return l
}

// Play plays a cue centered at full volume.
func (m *Manager) Play(cue Cue) {
	m.play(cue, m.volume, 0.5)
}

// PlayAt plays a cue panned and attenuated for a source at pos.
func (m *Manager) PlayAt(cue Cue, pos rl.Vector3) {
	m.mu.Lock()
	l := m.listener
	m.mu.Unlock()

	volume, pan := spatialize(l, pos, m.volume)
	if volume <= 0 {
		return
	}
	m.play(cue, volume, pan)
}

func (m *Manager) play(cue Cue, volume, pan float32) {
	if !m.enabled {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sound, ok := m.sounds[cue]
	if !ok {
		return
	}
	rl.SetSoundVolume(sound, volume)
	rl.SetSoundPan(sound, pan)
	rl.PlaySound(sound)
}

// spatialize returns the volume and raylib pan (0 left, 0.5 center, 1 right)
// of a source heard by l.
func spatialize(l Listener, pos rl.Vector3, volume float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)
	if distance >= MaxDistance {
		return 0, 0.5
	}
	volume *= 1 - distance/MaxDistance

	if distance <= 0.001 {
		return volume, 0.5
	}
	dir := rl.Vector3Scale(toSource, 1/distance)
	pan := rl.Clamp(0.5+rl.Vector3DotProduct(dir, l.Right)*0.5, 0, 1)

	// Sources behind the listener are slightly muffled.
	if front := rl.Vector3DotProduct(dir, l.Forward); front < 0 {
		volume *= 0.7 + 0.3*math32.Abs(front)
	}
	return volume, pan
}
