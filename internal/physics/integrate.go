package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// G is the default gravitational acceleration in units per second squared.
const G float32 = 9.81

// ApplyGravity adds the weight of an airborne body to its force accumulator.
func ApplyGravity(b *RigidBody) {
	ApplyGravityWith(b, G)
}

// ApplyGravityWith is ApplyGravity with an explicit acceleration magnitude.
// Grounded bodies are left alone so gravity does not fight ground contact.
func ApplyGravityWith(b *RigidBody, g float32) {
	if b.OnGround {
		return
	}
	b.Force.Y -= b.Mass * g
}

// Integrate advances b by dt using semi-implicit Euler and clears the force.
// Velocity must be updated before position.
func Integrate(b *RigidBody, dt float32) {
	accel := divide(b.Force, b.Mass)
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(accel, dt))
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	b.Force = rl.Vector3Zero()
}
