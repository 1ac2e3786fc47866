package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestLookClampsPitch(t *testing.T) {
	c := New(DefaultSensitivity)

	c.Look(rl.Vector2{Y: -1e6})
	assert.Equal(t, float32(PitchLimit), c.Pitch)

	c.Look(rl.Vector2{Y: 1e6})
	assert.Equal(t, float32(-PitchLimit), c.Pitch)
}

func TestLookTurnsYaw(t *testing.T) {
	c := New(0.01)
	c.Look(rl.Vector2{X: 100})
	assert.InDelta(t, -1.0, c.Yaw, 1e-6)
}

func TestNewFallsBackToDefaultSensitivity(t *testing.T) {
	assert.Equal(t, float32(DefaultSensitivity), New(0).Sensitivity)
}

func TestDirectionsQuarterTurn(t *testing.T) {
	c := New(DefaultSensitivity)
	c.Yaw = math.Pi / 2

	forward, right := c.Directions()

	// W walks toward -X, S toward +X, A toward +Z, D toward -Z.
	assert.InDelta(t, -1, forward.X, 1e-6)
	assert.InDelta(t, 0, forward.Z, 1e-6)
	assert.Greater(t, rl.Vector3Negate(forward).X, float32(0))
	assert.Greater(t, rl.Vector3Negate(right).Z, float32(0))
	assert.InDelta(t, -1, right.Z, 1e-6)
	assert.InDelta(t, 0, right.X, 1e-6)
	assert.Zero(t, forward.Y)
	assert.Zero(t, right.Y)
}

func TestDirectionsIgnorePitch(t *testing.T) {
	c := New(DefaultSensitivity)
	c.Pitch = 1.2
	forward, _ := c.Directions()
	assert.InDelta(t, 1, rl.Vector3Length(forward), 1e-6)
}

func TestCamera3DFollowsTarget(t *testing.T) {
	c := New(DefaultSensitivity)
	cam := c.Camera3D(rl.Vector3{X: 2, Y: 0.75, Z: 3})

	assert.Equal(t, rl.Vector3{X: 2, Y: 2.25, Z: 3}, cam.Position)
	assert.InDelta(t, 2, cam.Target.Z, 1e-6)
}
