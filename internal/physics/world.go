package physics

import (
	"go.uber.org/zap"
)

// World carries the frame-independent settings of a simulation: gravity and
// the static obstacle set. It never owns the bodies it steps.
type World struct {
	Gravity   float32
	Obstacles []Aabb

	logger    *zap.Logger
	frame     uint64
	lastPairs int
}

// NewWorld creates a world with the given gravity magnitude.
// A nil logger disables logging.
func NewWorld(gravity float32, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		Gravity: gravity,
		logger:  logger.Named("physics"),
	}
}

// SetObstacles replaces the static obstacle set used by the next Step.
func (w *World) SetObstacles(obstacles []Aabb) {
	w.Obstacles = obstacles
}

// Step runs one frame over objects:
//
//  1. for each object in order: clear OnGround, apply gravity, integrate and
//     resolve against every static obstacle;
//  2. for each pair (i, j), i < j, in ascending order: resolve the pair.
//
// It returns the colliding pairs in visit order. Results depend only on the
// input order and dt, so identical inputs give identical outputs.
func (w *World) Step(objects []PhysicsObject, dt float32) []Pair {
	pairs := step(objects, w.Obstacles, w.Gravity, dt)
	w.frame++

	if len(pairs) != w.lastPairs {
		w.logger.Debug("contact pairs changed",
			zap.Uint64("frame", w.frame),
			zap.Int("objects", len(objects)),
			zap.Int("pairs", len(pairs)),
			zap.Int("previous", w.lastPairs),
		)
		w.lastPairs = len(pairs)
	}
	return pairs
}

// Frame returns the number of steps taken so far.
func (w *World) Frame() uint64 {
	return w.frame
}
