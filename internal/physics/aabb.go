package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// ErrNegativeExtent is returned when a box is built with a negative half-extent.
var ErrNegativeExtent = errors.New("physics: half-extents must be non-negative")

// Aabb is a static axis-aligned box given by its center and half-extents.
type Aabb struct {
	Center      rl.Vector3
	HalfExtents rl.Vector3
}

// NewAabb creates a static box, rejecting negative half-extents.
func NewAabb(center, halfExtents rl.Vector3) (Aabb, error) {
	if !validExtents(halfExtents) {
		return Aabb{}, errors.Wrapf(ErrNegativeExtent, "aabb half-extents %v", halfExtents)
	}
	return Aabb{Center: center, HalfExtents: halfExtents}, nil
}

// Min returns the lowest corner of the box.
func (a Aabb) Min() rl.Vector3 {
	return rl.Vector3Subtract(a.Center, a.HalfExtents)
}

// Max returns the highest corner of the box.
func (a Aabb) Max() rl.Vector3 {
	return rl.Vector3Add(a.Center, a.HalfExtents)
}

// BoundingBox converts the box into raylib's min/max form for drawing.
func (a Aabb) BoundingBox() rl.BoundingBox {
	return rl.NewBoundingBox(a.Min(), a.Max())
}

// Collider is a box shape that is always centered on its owning body.
type Collider struct {
	HalfExtents rl.Vector3
}

// NewCollider creates a collider, rejecting negative half-extents.
func NewCollider(halfExtents rl.Vector3) (Collider, error) {
	if !validExtents(halfExtents) {
		return Collider{}, errors.Wrapf(ErrNegativeExtent, "collider half-extents %v", halfExtents)
	}
	return Collider{HalfExtents: halfExtents}, nil
}

// Bounds returns the collider placed at the given position.
func (c Collider) Bounds(position rl.Vector3) Aabb {
	return Aabb{Center: position, HalfExtents: c.HalfExtents}
}

// NaN components fail these comparisons too.
func validExtents(h rl.Vector3) bool {
	return h.X >= 0 && h.Y >= 0 && h.Z >= 0
}

// Axis identifies one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// overlap returns the center delta (a - b) and the per-axis penetration of two boxes.
func overlap(posA, halfA, posB, halfB rl.Vector3) (delta, pen rl.Vector3) {
	delta = rl.Vector3Subtract(posA, posB)
	pen = rl.Vector3{
		X: halfA.X + halfB.X - math32.Abs(delta.X),
		Y: halfA.Y + halfB.Y - math32.Abs(delta.Y),
		Z: halfA.Z + halfB.Z - math32.Abs(delta.Z),
	}
	return delta, pen
}

// penetrating reports a 3D intersection: every axis must overlap strictly.
// Touching faces (zero overlap) do not count.
func penetrating(pen rl.Vector3) bool {
	return pen.X > 0 && pen.Y > 0 && pen.Z > 0
}

// separationAxis picks the axis of least penetration.
// Comparisons are strict, so X wins only when it is smaller than both others
// and an X/Y or Y/Z tie falls through to the later axis.
func separationAxis(pen rl.Vector3) Axis {
	if pen.X < pen.Y && pen.X < pen.Z {
		return AxisX
	}
	if pen.Y < pen.Z {
		return AxisY
	}
	return AxisZ
}

func component(v rl.Vector3, axis Axis) float32 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *rl.Vector3, axis Axis, value float32) {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	default:
		v.Z = value
	}
}

// pushSign is +1 when delta is strictly positive, otherwise -1.
func pushSign(delta float32) float32 {
	if delta > 0 {
		return 1
	}
	return -1
}
