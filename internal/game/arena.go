package game

import (
	"astroforge/internal/config"
	"astroforge/internal/input"
	"astroforge/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	playerMuzzle = 0.6 // distance from the eye
	enemyMuzzle  = 1.0 // distance from the body center
)

// Arena owns every entity of a match and advances them one frame at a time.
type Arena struct {
	Player  *Player
	Enemy   *Enemy // nil when disabled
	Bullets []*Bullet
	Beacon  Beacon
	// BeaconPaused freezes artifact activation, used while the overlay self-test runs.
	BeaconPaused bool

	cfg       config.Config
	world     *physics.World
	logger    *zap.Logger
	obstacles []physics.Aabb

	// Every bullet starts as a copy of this body and shape.
	bulletBody  physics.RigidBody
	bulletShape physics.Collider
}

func NewArena(cfg config.Config, logger *zap.Logger) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	player, err := newPlayer(cfg.Player)
	if err != nil {
		return nil, err
	}
	obstacles, err := buildObstacles(cfg.Arena)
	if err != nil {
		return nil, err
	}
	bulletBody, err := physics.NewRigidBody(cfg.Bullet.Mass, rl.Vector3{})
	if err != nil {
		return nil, errors.Wrap(err, "bullet")
	}
	bulletShape, err := physics.NewCollider(cfg.Bullet.HalfExtents.Vector())
	if err != nil {
		return nil, errors.Wrap(err, "bullet")
	}

	a := &Arena{
		Player:      player,
		Beacon:      NewBeacon(cfg.Arena.ActivationRadius, cfg.Arena.MessageSeconds, cfg.Arena.Message),
		cfg:         cfg,
		world:       physics.NewWorld(cfg.Physics.Gravity, logger),
		logger:      logger.Named("arena"),
		obstacles:   obstacles,
		bulletBody:  bulletBody,
		bulletShape: bulletShape,
	}
	a.world.SetObstacles(a.obstacles)
	if cfg.Enemy.Enabled {
		if a.Enemy, err = newEnemy(cfg.Enemy); err != nil {
			return nil, err
		}
	}

	a.logger.Info("arena ready",
		zap.Int("obstacles", len(a.obstacles)),
		zap.Bool("enemy", a.Enemy != nil),
		zap.Float32("gravity", cfg.Physics.Gravity),
	)
	return a, nil
}

// buildObstacles lays out the floor and a ring of artifact blocks resting on it.
func buildObstacles(cfg config.Arena) ([]physics.Aabb, error) {
	floor, err := physics.NewAabb(cfg.FloorCenter.Vector(), cfg.FloorHalf.Vector())
	if err != nil {
		return nil, errors.Wrap(err, "floor")
	}
	top := floor.Max().Y
	half := cfg.ArtifactHalf.Vector()

	obstacles := make([]physics.Aabb, 0, 1+cfg.ArtifactCount)
	obstacles = append(obstacles, floor)
	for k := 0; k < cfg.ArtifactCount; k++ {
		angle := 2 * math32.Pi * float32(k) / float32(cfg.ArtifactCount)
		artifact, err := physics.NewAabb(rl.Vector3{
			X: cfg.ArtifactRing * math32.Cos(angle),
			Y: top + half.Y,
			Z: cfg.ArtifactRing * math32.Sin(angle),
		}, half)
		if err != nil {
			return nil, errors.Wrapf(err, "artifact %d", k)
		}
		obstacles = append(obstacles, artifact)
	}
	return obstacles, nil
}

// Obstacles returns the static boxes of the arena, floor first.
func (a *Arena) Obstacles() []physics.Aabb {
	return a.obstacles
}

// Artifacts returns the artifact blocks only.
func (a *Arena) Artifacts() []physics.Aabb {
	return a.obstacles[1:]
}

// Frame is the number of physics steps taken.
func (a *Arena) Frame() uint64 {
	return a.world.Frame()
}

// Update advances the match by dt and returns what happened.
func (a *Arena) Update(in input.Intent, dt float32) []Event {
	if dt <= 0 {
		return nil
	}
	if dt > a.cfg.Physics.MaxStep {
		dt = a.cfg.Physics.MaxStep
	}

	var events []Event
	p := a.Player
	p.View.Look(in.Look)
	if p.Alive() {
		p.steer(in)
		events = a.playerFire(in, dt, events)
	}
	if a.Enemy.Alive() {
		events = a.enemyThink(dt, events)
	}
	events = a.expireBullets(dt, events)

	wasGrounded := p.Body.OnGround
	objects, refs := a.collect()
	for _, pair := range a.world.Step(objects, dt) {
		events = a.contact(refs[pair.I], refs[pair.J], events)
	}

	for _, r := range refs {
		if r.kind == refBullet && r.bullet.Alive && stopped(r.velocity, r.bullet.Body) {
			r.bullet.Alive = false
		}
	}
	a.compactBullets()

	if !wasGrounded && p.Body.OnGround {
		events = append(events, Event{Kind: EventLanded, Position: p.Body.Position})
	}
	if !a.BeaconPaused && a.Beacon.Update(p.Body.Position, p.Body.OnGround, dt) {
		a.logger.Info("artifact activated", zap.Bool("unlocked", a.Beacon.Unlocked))
		events = append(events, Event{Kind: EventArtifactActivated, Position: p.Body.Position})
	}
	return events
}

func (a *Arena) playerFire(in input.Intent, dt float32, events []Event) []Event {
	p := a.Player
	if p.reload > 0 {
		p.reload -= dt
	}
	if !in.Fire || p.reload > 0 {
		return events
	}

	dir := p.View.LookDirection()
	origin := rl.Vector3Add(p.View.Eye(p.Body.Position), rl.Vector3Scale(dir, playerMuzzle))
	b := a.spawnBullet(OwnerPlayer, origin, rl.Vector3Scale(dir, a.cfg.Bullet.Speed))
	p.reload = p.cooldown
	return append(events, Event{Kind: EventShot, Position: origin, Owner: OwnerPlayer, ID: b.ID})
}

func (a *Arena) enemyThink(dt float32, events []Event) []Event {
	e := a.Enemy
	target := a.Player.Body.Position
	e.chase(target)

	if e.fireTimer > 0 {
		e.fireTimer -= dt
	}
	if e.fireTimer > 0 || !a.Player.Alive() {
		return events
	}

	to := rl.Vector3Subtract(target, e.Body.Position)
	dist := rl.Vector3Length(to)
	if dist == 0 || dist > e.sight || !a.lineOfSight(e.Body.Position, target) {
		return events
	}

	dir := rl.Vector3Scale(to, 1/dist)
	origin := rl.Vector3Add(e.Body.Position, rl.Vector3Scale(dir, enemyMuzzle))
	b := a.spawnBullet(OwnerEnemy, origin, a.aim(dir, dist))
	e.fireTimer = e.interval
	return append(events, Event{Kind: EventShot, Position: origin, Owner: OwnerEnemy, ID: b.ID})
}

// aim returns a muzzle velocity along dir that lifts the shot by the amount
// gravity drops it over dist.
func (a *Arena) aim(dir rl.Vector3, dist float32) rl.Vector3 {
	speed := a.cfg.Bullet.Speed
	flight := dist / speed
	v := rl.Vector3Scale(dir, speed)
	v.Y += 0.5 * a.cfg.Physics.Gravity * flight
	return v
}

// lineOfSight reports whether no obstacle lies between from and to.
func (a *Arena) lineOfSight(from, to rl.Vector3) bool {
	dir := rl.Vector3Subtract(to, from)
	_, blocked := physics.Raycast(from, dir, rl.Vector3Length(dir), a.obstacles)
	return !blocked
}

func (a *Arena) spawnBullet(owner Owner, origin, velocity rl.Vector3) *Bullet {
	b := &Bullet{
		ID:       uuid.New(),
		Owner:    owner,
		Body:     a.bulletBody,
		Collider: a.bulletShape,
		TTL:      a.cfg.Bullet.TTL,
		Alive:    true,
	}
	b.Body.Position = origin
	b.Body.Velocity = velocity
	a.Bullets = append(a.Bullets, b)
	a.logger.Debug("bullet spawned", zap.Stringer("id", b.ID), zap.Stringer("owner", owner))
	return b
}

func (a *Arena) expireBullets(dt float32, events []Event) []Event {
	for _, b := range a.Bullets {
		if !b.Alive {
			continue
		}
		b.TTL -= dt
		if b.TTL <= 0 {
			b.Alive = false
			events = append(events, Event{Kind: EventBulletExpired, Position: b.Body.Position, Owner: b.Owner, ID: b.ID})
		}
	}
	a.compactBullets()
	return events
}

func (a *Arena) compactBullets() {
	live := a.Bullets[:0]
	for _, b := range a.Bullets {
		if b.Alive {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(a.Bullets); i++ {
		a.Bullets[i] = nil
	}
	a.Bullets = live
}

type refKind int

const (
	refPlayer refKind = iota
	refEnemy
	refBullet
)

// ref maps a physics object index back to its entity.
type ref struct {
	kind     refKind
	bullet   *Bullet
	velocity rl.Vector3 // before the step
}

// collect builds this frame's physics objects: player, live enemy, live bullets.
func (a *Arena) collect() ([]physics.PhysicsObject, []ref) {
	objects := make([]physics.PhysicsObject, 0, 2+len(a.Bullets))
	refs := make([]ref, 0, cap(objects))

	objects = append(objects, physics.PhysicsObject{Body: &a.Player.Body, Collider: a.Player.Collider})
	refs = append(refs, ref{kind: refPlayer})
	if a.Enemy.Alive() {
		objects = append(objects, physics.PhysicsObject{Body: &a.Enemy.Body, Collider: a.Enemy.Collider})
		refs = append(refs, ref{kind: refEnemy})
	}
	for _, b := range a.Bullets {
		objects = append(objects, physics.PhysicsObject{Body: &b.Body, Collider: b.Collider})
		refs = append(refs, ref{kind: refBullet, bullet: b, velocity: b.Body.Velocity})
	}
	return objects, refs
}

func (a *Arena) contact(x, y ref, events []Event) []Event {
	if x.kind == refBullet && y.kind != refBullet {
		x, y = y, x
	}
	switch {
	case x.kind == refBullet:
		if x.bullet.Alive && y.bullet.Alive {
			x.bullet.Alive = false
			y.bullet.Alive = false
			events = append(events, Event{Kind: EventBulletsCollided, Position: x.bullet.Body.Position, ID: x.bullet.ID})
		}
	case y.kind != refBullet:
		// Player and enemy bodies only push each other.
	case x.kind == refPlayer:
		events = a.hitPlayer(y, events)
	default:
		events = a.hitEnemy(y, events)
	}
	return events
}

func (a *Arena) hitPlayer(r ref, events []Event) []Event {
	b := r.bullet
	if !b.Alive || b.Owner == OwnerPlayer {
		return events
	}
	b.Alive = false
	p := a.Player
	p.Health -= a.cfg.Bullet.Damage
	a.logger.Debug("player hit", zap.Int("health", p.Health), zap.Stringer("bullet", b.ID))
	return append(events, Event{Kind: EventPlayerHit, Position: p.Body.Position, Owner: b.Owner, ID: b.ID})
}

func (a *Arena) hitEnemy(r ref, events []Event) []Event {
	b := r.bullet
	if !b.Alive || b.Owner == OwnerEnemy {
		return events
	}
	b.Alive = false
	e := a.Enemy
	e.Health -= a.cfg.Bullet.Damage

	push := r.velocity
	push.Y = 0
	if rl.Vector3Length(push) > 0 {
		push = rl.Vector3Scale(rl.Vector3Normalize(push), e.Body.Mass*a.cfg.Bullet.Knockback)
		e.Body.ApplyImpulse(push)
	}

	events = append(events, Event{Kind: EventEnemyHit, Position: e.Body.Position, Owner: b.Owner, ID: e.ID})
	if !e.Alive() {
		a.logger.Info("enemy down", zap.Stringer("id", e.ID), zap.Uint64("frame", a.world.Frame()))
		events = append(events, Event{Kind: EventEnemyDown, Position: e.Body.Position, ID: e.ID})
	}
	return events
}

// stopped reports whether a bullet ran into something during the step:
// it landed, or an axis it was moving along was zeroed by a collision.
func stopped(before rl.Vector3, body physics.RigidBody) bool {
	if body.OnGround {
		return true
	}
	after := body.Velocity
	return (before.X != 0 && after.X == 0) ||
		(before.Y != 0 && after.Y == 0) ||
		(before.Z != 0 && after.Z == 0)
}
