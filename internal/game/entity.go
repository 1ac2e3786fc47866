package game

import (
	"astroforge/internal/camera"
	"astroforge/internal/config"
	"astroforge/internal/input"
	"astroforge/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// idleDamping is the fraction of horizontal velocity kept per frame without input.
const idleDamping = 0.8

// Owner tells who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

type Player struct {
	Body     physics.RigidBody
	Collider physics.Collider
	View     *camera.Follow
	Health   int

	speed     float32
	jumpSpeed float32
	cooldown  float32
	reload    float32
}

func newPlayer(cfg config.Player) (*Player, error) {
	body, err := physics.NewRigidBody(cfg.Mass, cfg.Spawn.Vector())
	if err != nil {
		return nil, errors.Wrap(err, "player")
	}
	collider, err := physics.NewCollider(cfg.HalfExtents.Vector())
	if err != nil {
		return nil, errors.Wrap(err, "player")
	}
	return &Player{
		Body:      body,
		Collider:  collider,
		View:      camera.New(cfg.Sensitivity),
		Health:    cfg.Health,
		speed:     cfg.Speed,
		jumpSpeed: cfg.JumpSpeed,
		cooldown:  cfg.FireCooldown,
	}, nil
}

// steer converts walk and jump intent into impulses on the body.
func (p *Player) steer(in input.Intent) {
	var dir rl.Vector3
	if in.Moving() {
		forward, right := p.View.Directions()
		dir = rl.Vector3Add(rl.Vector3Scale(forward, in.Forward), rl.Vector3Scale(right, in.Right))
	}
	walk(&p.Body, dir, p.speed)

	if in.Jump && p.Body.OnGround {
		p.Body.ApplyImpulse(rl.Vector3{Y: p.Body.Mass * p.jumpSpeed})
	}
}

func (p *Player) Alive() bool {
	return p.Health > 0
}

// walk drives the horizontal velocity to dir*speed in one frame, or damps it
// when dir is zero. Vertical velocity is left to gravity and collisions.
func walk(b *physics.RigidBody, dir rl.Vector3, speed float32) {
	dir.Y = 0
	var target rl.Vector3
	if rl.Vector3Length(dir) > 0 {
		target = rl.Vector3Scale(rl.Vector3Normalize(dir), speed)
	} else {
		target = rl.Vector3{X: b.Velocity.X * idleDamping, Z: b.Velocity.Z * idleDamping}
	}
	b.ApplyImpulse(rl.Vector3{
		X: b.Mass * (target.X - b.Velocity.X),
		Z: b.Mass * (target.Z - b.Velocity.Z),
	})
}

type Enemy struct {
	ID       uuid.UUID
	Body     physics.RigidBody
	Collider physics.Collider
	Health   int

	speed     float32
	interval  float32
	sight     float32
	fireTimer float32
}

func newEnemy(cfg config.Enemy) (*Enemy, error) {
	body, err := physics.NewRigidBody(cfg.Mass, cfg.Spawn.Vector())
	if err != nil {
		return nil, errors.Wrap(err, "enemy")
	}
	collider, err := physics.NewCollider(cfg.HalfExtents.Vector())
	if err != nil {
		return nil, errors.Wrap(err, "enemy")
	}
	return &Enemy{
		ID:        uuid.New(),
		Body:      body,
		Collider:  collider,
		Health:    cfg.Health,
		speed:     cfg.Speed,
		interval:  cfg.FireInterval,
		sight:     cfg.SightRange,
		fireTimer: cfg.FireInterval,
	}, nil
}

func (e *Enemy) Alive() bool {
	return e != nil && e.Health > 0
}

// keepDistance is how close the enemy walks before it stops and only shoots.
const keepDistance = 4

// chase walks toward target on the XZ plane.
func (e *Enemy) chase(target rl.Vector3) {
	to := rl.Vector3Subtract(target, e.Body.Position)
	to.Y = 0
	if rl.Vector3Length(to) < keepDistance {
		to = rl.Vector3Zero()
	}
	walk(&e.Body, to, e.speed)
}

type Bullet struct {
	ID       uuid.UUID
	Owner    Owner
	Body     physics.RigidBody
	Collider physics.Collider
	TTL      float32
	Alive    bool
}
