package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestApplyGravityGating(t *testing.T) {
	t.Run("grounded", func(t *testing.T) {
		b := MustRigidBody(80, rl.Vector3{})
		b.OnGround = true
		b.Force = rl.Vector3{X: 1, Y: 2, Z: 3}

		ApplyGravity(&b)

		assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, b.Force)
	})

	t.Run("airborne", func(t *testing.T) {
		b := MustRigidBody(80, rl.Vector3{})
		before := b.Force.Y

		ApplyGravity(&b)

		assert.Less(t, b.Force.Y, before)
		assert.InDelta(t, -80*G, b.Force.Y, 1e-3)
		assert.Zero(t, b.Force.X)
		assert.Zero(t, b.Force.Z)
	})

	t.Run("custom magnitude", func(t *testing.T) {
		b := MustRigidBody(2, rl.Vector3{})
		ApplyGravityWith(&b, 25)
		assert.InDelta(t, -50, b.Force.Y, 1e-6)
	})
}

func TestIntegrateIsSemiImplicit(t *testing.T) {
	const dt = float32(1.0 / 60.0)
	b := MustRigidBody(2, rl.Vector3{Y: 10})
	b.ApplyForce(rl.Vector3{Y: -30})

	Integrate(&b, dt)

	wantVel := float32(-30) / 2 * dt
	assert.InDelta(t, wantVel, b.Velocity.Y, 1e-6)
	// Position moves with the velocity computed in this same step.
	assert.InDelta(t, 10+wantVel*dt, b.Position.Y, 1e-6)
	assert.Equal(t, rl.Vector3{}, b.Force, "force accumulator must be cleared")
}

func TestIntegrateKeepsVelocityWithoutForce(t *testing.T) {
	b := MustRigidBody(1, rl.Vector3{})
	b.Velocity = rl.Vector3{X: 2, Z: -4}

	Integrate(&b, 0.5)

	assert.Equal(t, rl.Vector3{X: 2, Z: -4}, b.Velocity)
	assert.InDelta(t, 1, b.Position.X, 1e-6)
	assert.InDelta(t, -2, b.Position.Z, 1e-6)
}

func TestGravityAndImpulseCompose(t *testing.T) {
	const dt = float32(0.1)
	b := MustRigidBody(10, rl.Vector3{})

	b.ApplyImpulse(rl.Vector3{Y: 120})
	ApplyGravity(&b)
	Integrate(&b, dt)

	assert.InDelta(t, 12-G*dt, b.Velocity.Y, 1e-5)
}
