package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// ErrNonPositiveMass is returned when a body is built with mass <= 0 or NaN.
var ErrNonPositiveMass = errors.New("physics: mass must be positive")

// RigidBody is the mutable physical state of one entity.
// Force is a per-frame accumulator that Integrate clears.
// OnGround is only ever set by a collision that pushes the body up.
type RigidBody struct {
	Position rl.Vector3
	Velocity rl.Vector3
	OnGround bool
	Mass     float32
	Force    rl.Vector3
}

// NewRigidBody returns a body at rest at position.
func NewRigidBody(mass float32, position rl.Vector3) (RigidBody, error) {
	if !(mass > 0) {
		return RigidBody{}, errors.Wrapf(ErrNonPositiveMass, "got %v", mass)
	}
	return RigidBody{
		Position: position,
		Mass:     mass,
	}, nil
}

// MustRigidBody is like NewRigidBody but panics on an invalid mass.
// Intended for masses that already went through config validation.
func MustRigidBody(mass float32, position rl.Vector3) RigidBody {
	b, err := NewRigidBody(mass, position)
	if err != nil {
		panic(err)
	}
	return b
}

// ApplyForce adds f to the force accumulator.
func (b *RigidBody) ApplyForce(f rl.Vector3) {
	b.Force = rl.Vector3Add(b.Force, f)
}

// ApplyImpulse changes velocity immediately by j / mass.
func (b *RigidBody) ApplyImpulse(j rl.Vector3) {
	b.Velocity = rl.Vector3Add(b.Velocity, divide(j, b.Mass))
}

func divide(v rl.Vector3, s float32) rl.Vector3 {
	return rl.Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}
