// Package stress runs headless physics scenarios for timing and determinism checks.
package stress

import (
	"context"
	"math/rand"
	"time"

	"astroforge/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNondeterministic = errors.New("stress: repeated run diverged")

const dt = float32(1.0 / 60.0)

var (
	floor    = physics.Aabb{Center: rl.Vector3{Y: -0.5}, HalfExtents: rl.Vector3{X: 50, Y: 0.5, Z: 50}}
	humanoid = physics.Collider{HalfExtents: rl.Vector3{X: 0.5, Y: 0.75, Z: 0.5}}
	crate    = physics.Collider{HalfExtents: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}}
)

// Scenario describes one headless run. With Resting set the scene is a single
// humanoid standing on the floor; otherwise Objects crates are dropped at
// seeded random positions.
type Scenario struct {
	Name    string
	Objects int
	Frames  int
	Seed    int64
	Resting bool
}

type Result struct {
	Scenario Scenario
	PerStep  time.Duration
	Pairs    int     // total contact pairs over the run
	MaxPairs int     // most pairs in one frame
	MaxDY    float32 // largest per-frame |dy| of object 0
	Digest   uint64
}

func DefaultScenarios() []Scenario {
	scenarios := []Scenario{{Name: "resting", Objects: 1, Frames: 300, Resting: true}}
	for _, n := range []int{10, 50, 100, 250} {
		scenarios = append(scenarios, Scenario{Name: "drop", Objects: n, Frames: 300, Seed: 42})
	}
	return scenarios
}

// Run executes s once. Identical scenarios give identical digests.
func Run(s Scenario) Result {
	bodies := spawn(s)
	obstacles := []physics.Aabb{floor}
	collider := crate
	if s.Resting {
		collider = humanoid
	}

	objects := make([]physics.PhysicsObject, len(bodies))
	for i := range bodies {
		objects[i] = physics.PhysicsObject{Body: &bodies[i], Collider: collider}
	}
	res := Result{Scenario: s}
	if len(bodies) == 0 || s.Frames <= 0 {
		res.Digest = physics.Digest(objects)
		return res
	}

	start := time.Now()
	for frame := 0; frame < s.Frames; frame++ {
		prevY := bodies[0].Position.Y
		pairs := physics.Step(objects, obstacles, dt)

		res.Pairs += len(pairs)
		if len(pairs) > res.MaxPairs {
			res.MaxPairs = len(pairs)
		}
		if dy := math32.Abs(bodies[0].Position.Y - prevY); frame > 0 && dy > res.MaxDY {
			res.MaxDY = dy
		}
	}
	res.PerStep = time.Since(start) / time.Duration(s.Frames)
	res.Digest = physics.Digest(objects)
	return res
}

func spawn(s Scenario) []physics.RigidBody {
	if s.Resting {
		return []physics.RigidBody{physics.MustRigidBody(80, rl.Vector3{X: 8, Y: 0.75, Z: -8})}
	}
	rng := rand.New(rand.NewSource(s.Seed))
	span := 4 + float32(s.Objects)/10
	bodies := make([]physics.RigidBody, s.Objects)
	for i := range bodies {
		bodies[i] = physics.MustRigidBody(1+rng.Float32()*9, rl.Vector3{
			X: (rng.Float32() - 0.5) * span,
			Y: 1 + rng.Float32()*span,
			Z: (rng.Float32() - 0.5) * span,
		})
		bodies[i].Velocity = rl.Vector3{X: rng.Float32() - 0.5, Z: rng.Float32() - 0.5}
	}
	return bodies
}

// RunAll runs every scenario twice in parallel and checks that both runs
// ended in the same state. Results keep the order of scenarios.
func RunAll(ctx context.Context, scenarios []Scenario, logger *zap.Logger) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			first := Run(s)
			second := Run(s)
			if first.Digest != second.Digest {
				return errors.Wrapf(ErrNondeterministic, "%s/%d: %x != %x", s.Name, s.Objects, first.Digest, second.Digest)
			}
			logger.Debug("scenario done",
				zap.String("name", s.Name),
				zap.Int("objects", s.Objects),
				zap.Duration("per_step", first.PerStep),
			)
			results[i] = first
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
