// Package config loads the game settings from YAML.
package config

import (
	"io"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid value")

// Vec3 is written as a three element list, e.g. [0, 0.75, 8].
type Vec3 [3]float32

func (v Vec3) Vector() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

type Config struct {
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Enemy   Enemy   `yaml:"enemy"`
	Bullet  Bullet  `yaml:"bullet"`
	Arena   Arena   `yaml:"arena"`
	Audio   Audio   `yaml:"audio"`
	HUD     HUD     `yaml:"hud"`
	Log     Log     `yaml:"log"`
}

type Physics struct {
	Gravity float32 `yaml:"gravity"`
	// MaxStep caps a single frame's dt so a stalled window does not tunnel bodies.
	MaxStep float32 `yaml:"max_step"`
}

type Player struct {
	Mass         float32 `yaml:"mass"`
	Speed        float32 `yaml:"speed"`
	JumpSpeed    float32 `yaml:"jump_speed"`
	HalfExtents  Vec3    `yaml:"half_extents"`
	Spawn        Vec3    `yaml:"spawn"`
	Health       int     `yaml:"health"`
	FireCooldown float32 `yaml:"fire_cooldown"`
	Sensitivity  float32 `yaml:"mouse_sensitivity"`
}

type Enemy struct {
	Enabled      bool    `yaml:"enabled"`
	Mass         float32 `yaml:"mass"`
	Speed        float32 `yaml:"speed"`
	HalfExtents  Vec3    `yaml:"half_extents"`
	Spawn        Vec3    `yaml:"spawn"`
	Health       int     `yaml:"health"`
	FireInterval float32 `yaml:"fire_interval"`
	SightRange   float32 `yaml:"sight_range"`
}

type Bullet struct {
	Mass        float32 `yaml:"mass"`
	Speed       float32 `yaml:"speed"`
	TTL         float32 `yaml:"ttl"`
	Damage      int     `yaml:"damage"`
	Knockback   float32 `yaml:"knockback"` // velocity change of the hit body
	HalfExtents Vec3    `yaml:"half_extents"`
}

type Arena struct {
	FloorCenter      Vec3    `yaml:"floor_center"`
	FloorHalf        Vec3    `yaml:"floor_half"`
	ArtifactCount    int     `yaml:"artifact_count"`
	ArtifactRing     float32 `yaml:"artifact_ring"`
	ArtifactHalf     Vec3    `yaml:"artifact_half"`
	ActivationRadius float32 `yaml:"activation_radius"`
	MessageSeconds   float32 `yaml:"message_seconds"`
	Message          string  `yaml:"message"`
}

// Audio paths are optional. A cue whose file is missing plays a generated tone.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float32 `yaml:"volume"`
	Activation string  `yaml:"activation"`
	Shot       string  `yaml:"shot"`
	Hit        string  `yaml:"hit"`
	Land       string  `yaml:"land"`
}

// HUD controls overlay text. Font is a TTF/OTF path; empty uses raylib's
// built-in font, which only covers ASCII.
type HUD struct {
	Font         string `yaml:"font"`
	FontSize     int32  `yaml:"font_size"`
	SelfTestText string `yaml:"selftest_text"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings of the arena.
func Default() Config {
	return Config{
		Physics: Physics{Gravity: 9.81, MaxStep: 0.05},
		Player: Player{
			Mass:         80,
			Speed:        8,
			JumpSpeed:    12,
			HalfExtents:  Vec3{0.5, 0.75, 0.5},
			Spawn:        Vec3{0, 0.75, 8},
			Health:       100,
			FireCooldown: 0.15,
			Sensitivity:  0.001,
		},
		Enemy: Enemy{
			Enabled:      true,
			Mass:         80,
			Speed:        3,
			HalfExtents:  Vec3{0.5, 0.75, 0.5},
			Spawn:        Vec3{8, 0.75, -8},
			Health:       50,
			FireInterval: 1.5,
			SightRange:   25,
		},
		Bullet: Bullet{
			Mass:        0.1,
			Speed:       30,
			TTL:         2,
			Damage:      10,
			Knockback:   4,
			HalfExtents: Vec3{0.1, 0.1, 0.1},
		},
		Arena: Arena{
			FloorCenter:      Vec3{0, -0.5, 0},
			FloorHalf:        Vec3{50, 0.5, 50},
			ArtifactCount:    6,
			ArtifactRing:     5,
			ArtifactHalf:     Vec3{0.5, 0.5, 0.5},
			ActivationRadius: 3,
			MessageSeconds:   3,
			Message:          "Technology unlocked: energy beacon",
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     1,
			Activation: "assets/audio/activation.ogg",
			Shot:       "assets/audio/shot.ogg",
			Hit:        "assets/audio/hit.ogg",
			Land:       "assets/audio/land.ogg",
		},
		HUD: HUD{
			FontSize:     32,
			SelfTestText: "Технология разблокирована: энергетический маяк",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults and validates the result.
// Keys that are not part of Config are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the simulation cannot run with.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.MaxStep > 0, "physics.max_step must be positive"},
		{c.Player.Mass > 0, "player.mass must be positive"},
		{c.Player.Speed > 0, "player.speed must be positive"},
		{c.Player.JumpSpeed >= 0, "player.jump_speed must not be negative"},
		{positive(c.Player.HalfExtents), "player.half_extents must be positive"},
		{c.Player.Health > 0, "player.health must be positive"},
		{c.Player.FireCooldown >= 0, "player.fire_cooldown must not be negative"},
		{c.Enemy.Mass > 0, "enemy.mass must be positive"},
		{c.Enemy.Speed >= 0, "enemy.speed must not be negative"},
		{positive(c.Enemy.HalfExtents), "enemy.half_extents must be positive"},
		{c.Enemy.Health > 0, "enemy.health must be positive"},
		{c.Enemy.FireInterval > 0, "enemy.fire_interval must be positive"},
		{c.Bullet.Mass > 0, "bullet.mass must be positive"},
		{c.Bullet.Speed > 0, "bullet.speed must be positive"},
		{c.Bullet.TTL > 0, "bullet.ttl must be positive"},
		{c.Bullet.Damage >= 0, "bullet.damage must not be negative"},
		{positive(c.Bullet.HalfExtents), "bullet.half_extents must be positive"},
		{nonNegative(c.Arena.FloorHalf), "arena.floor_half must not be negative"},
		{c.Arena.ArtifactCount >= 0, "arena.artifact_count must not be negative"},
		{nonNegative(c.Arena.ArtifactHalf), "arena.artifact_half must not be negative"},
		{c.Arena.ActivationRadius > 0, "arena.activation_radius must be positive"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1]"},
		{c.HUD.FontSize > 0, "hud.font_size must be positive"},
	}
	for _, check := range checks {
		if !check.ok {
			return errors.Wrap(ErrInvalid, check.what)
		}
	}
	return nil
}

func positive(v Vec3) bool {
	return v[0] > 0 && v[1] > 0 && v[2] > 0
}

func nonNegative(v Vec3) bool {
	return v[0] >= 0 && v[1] >= 0 && v[2] >= 0
}
