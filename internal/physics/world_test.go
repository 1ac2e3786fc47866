package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWorldUsesConfiguredGravity(t *testing.T) {
	w := NewWorld(25, nil)
	body := MustRigidBody(3, rl.Vector3{Y: 10})

	w.Step([]PhysicsObject{{Body: &body, Collider: unitCollide}}, 0.1)

	assert.InDelta(t, -2.5, body.Velocity.Y, 1e-5)
	assert.Equal(t, uint64(1), w.Frame())
}

func TestWorldResolvesAgainstObstacles(t *testing.T) {
	w := NewWorld(G, nil)
	w.SetObstacles([]Aabb{floor})
	body := MustRigidBody(80, rl.Vector3{Y: 0.75})

	w.Step([]PhysicsObject{{Body: &body, Collider: humanoid}}, 1.0/60.0)

	assert.True(t, body.OnGround)
	assert.InDelta(t, 0.75, body.Position.Y, 1e-6)
}

func TestWorldLogsPairTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := NewWorld(G, zap.New(core))

	b0 := MustRigidBody(1, rl.Vector3{Y: 10})
	b1 := MustRigidBody(1, rl.Vector3{X: 0.5, Y: 10})
	objs := []PhysicsObject{
		{Body: &b0, Collider: unitCollide},
		{Body: &b1, Collider: unitCollide},
	}

	pairs := w.Step(objs, 1.0/60.0)
	require.Len(t, pairs, 1)
	// The pair is now flush, so the next steps report nothing.
	assert.Empty(t, w.Step(objs, 1.0/60.0))
	assert.Empty(t, w.Step(objs, 1.0/60.0))

	entries := logs.FilterMessage("contact pairs changed").All()
	require.Len(t, entries, 2, "steady frames are not logged")
	assert.Equal(t, "physics", entries[0].LoggerName)
	assert.Equal(t, int64(1), entries[0].ContextMap()["pairs"])
	assert.Equal(t, int64(0), entries[1].ContextMap()["pairs"])
	assert.Equal(t, int64(1), entries[1].ContextMap()["previous"])
	assert.Equal(t, uint64(3), w.Frame())
}
