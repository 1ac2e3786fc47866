package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRigidBody(t *testing.T) {
	b, err := NewRigidBody(80, rl.Vector3{X: 8, Y: 0.75, Z: -8})
	require.NoError(t, err)

	assert.Equal(t, float32(80), b.Mass)
	assert.Equal(t, rl.Vector3{X: 8, Y: 0.75, Z: -8}, b.Position)
	assert.Equal(t, rl.Vector3{}, b.Velocity)
	assert.Equal(t, rl.Vector3{}, b.Force)
	assert.False(t, b.OnGround)
}

func TestNewRigidBodyRejectsBadMass(t *testing.T) {
	for _, mass := range []float32{0, -1, float32(math.NaN())} {
		_, err := NewRigidBody(mass, rl.Vector3{})
		require.Error(t, err, "mass %v", mass)
		assert.ErrorIs(t, err, ErrNonPositiveMass)
	}
}

func TestMustRigidBodyPanics(t *testing.T) {
	assert.Panics(t, func() { MustRigidBody(0, rl.Vector3{}) })
	assert.NotPanics(t, func() { MustRigidBody(1, rl.Vector3{}) })
}

func TestApplyForceAccumulates(t *testing.T) {
	b := MustRigidBody(2, rl.Vector3{})

	b.ApplyForce(rl.Vector3{X: 1, Y: 2, Z: 3})
	b.ApplyForce(rl.Vector3{X: -4, Y: 0, Z: 1})

	assert.Equal(t, rl.Vector3{X: -3, Y: 2, Z: 4}, b.Force)
	assert.Equal(t, rl.Vector3{}, b.Velocity, "force must not touch velocity before integration")
}

func TestApplyImpulseScalesByMass(t *testing.T) {
	b := MustRigidBody(4, rl.Vector3{})
	b.Velocity = rl.Vector3{X: 1}

	b.ApplyImpulse(rl.Vector3{X: 4, Y: 8, Z: -2})

	assert.InDelta(t, 2, b.Velocity.X, 1e-6)
	assert.InDelta(t, 2, b.Velocity.Y, 1e-6)
	assert.InDelta(t, -0.5, b.Velocity.Z, 1e-6)
	assert.Equal(t, rl.Vector3{}, b.Force)
}

func TestNewColliderAndAabbValidateExtents(t *testing.T) {
	_, err := NewCollider(rl.Vector3{X: 0.5, Y: -0.1, Z: 0.5})
	assert.ErrorIs(t, err, ErrNegativeExtent)

	_, err = NewAabb(rl.Vector3{}, rl.Vector3{X: -1})
	assert.ErrorIs(t, err, ErrNegativeExtent)

	c, err := NewCollider(rl.Vector3{X: 0.5, Y: 0.75, Z: 0.5})
	require.NoError(t, err)
	box := c.Bounds(rl.Vector3{Y: 1})
	assert.Equal(t, rl.Vector3{X: -0.5, Y: 0.25, Z: -0.5}, box.Min())
	assert.Equal(t, rl.Vector3{X: 0.5, Y: 1.75, Z: 0.5}, box.Max())
}
