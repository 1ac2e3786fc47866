package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// PitchLimit keeps the view just short of straight up or down.
	PitchLimit = 1.54

	DefaultSensitivity = 0.001
	DefaultEyeHeight   = 1.5
)

// Follow is a mouse-look camera that rides above its target.
// Yaw 0 looks down -Z; positive yaw turns left.
type Follow struct {
	Yaw         float32 // radians
	Pitch       float32 // radians, clamped to +-PitchLimit
	Sensitivity float32 // radians per pixel of mouse motion
	EyeHeight   float32
	Fovy        float32
}

func New(sensitivity float32) *Follow {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Follow{
		Sensitivity: sensitivity,
		EyeHeight:   DefaultEyeHeight,
		Fovy:        60,
	}
}

// Look turns the camera by a mouse delta in pixels.
func (c *Follow) Look(delta rl.Vector2) {
	c.Yaw -= delta.X * c.Sensitivity
	c.Pitch = rl.Clamp(c.Pitch-delta.Y*c.Sensitivity, -PitchLimit, PitchLimit)
}

// Directions returns the unit forward and right vectors on the XZ plane.
// Pitch does not affect them, so looking down never slows walking.
func (c *Follow) Directions() (forward, right rl.Vector3) {
	sin, cos := math32.Sin(c.Yaw), math32.Cos(c.Yaw)
	forward = rl.Vector3{X: -sin, Z: -cos}
	right = rl.Vector3{X: cos, Z: -sin}
	return
}

// LookDirection is the full view direction including pitch.
func (c *Follow) LookDirection() rl.Vector3 {
	sinYaw, cosYaw := math32.Sin(c.Yaw), math32.Cos(c.Yaw)
	sinPitch, cosPitch := math32.Sin(c.Pitch), math32.Cos(c.Pitch)
	return rl.Vector3{
		X: -sinYaw * cosPitch,
		Y: sinPitch,
		Z: -cosYaw * cosPitch,
	}
}

// Eye is the camera position for a target standing at target.
func (c *Follow) Eye(target rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: target.X, Y: target.Y + c.EyeHeight, Z: target.Z}
}

func (c *Follow) Camera3D(target rl.Vector3) rl.Camera3D {
	eye := c.Eye(target)
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, c.LookDirection()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
