package physics

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Index    int // position of the hit box in the obstacle slice
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest obstacle hit by the ray within maxDistance.
func Raycast(origin, direction rl.Vector3, maxDistance float32, obstacles []Aabb) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := RaycastHit{Index: -1, Distance: maxDistance}
	hit := false
	for i, box := range obstacles {
		if h, ok := raycastBox(origin, direction, box, maxDistance); ok && h.Distance < closest.Distance {
			closest = h
			closest.Index = i
			hit = true
		}
	}
	return closest, hit
}

// raycastBox is a slab test against a single box.
func raycastBox(origin, direction rl.Vector3, box Aabb, maxDistance float32) (RaycastHit, bool) {
	min := box.Min()
	max := box.Max()

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for _, axis := range [...]Axis{AxisX, AxisY, AxisZ} {
		o := component(origin, axis)
		d := component(direction, axis)
		lo := component(min, axis)
		hi := component(max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: faceNormal(point, min, max), Distance: t}, true
}

func faceNormal(point, min, max rl.Vector3) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case math32.Abs(point.X-min.X) < epsilon:
		return rl.Vector3{X: -1}
	case math32.Abs(point.X-max.X) < epsilon:
		return rl.Vector3{X: 1}
	case math32.Abs(point.Y-min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case math32.Abs(point.Y-max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case math32.Abs(point.Z-min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}
