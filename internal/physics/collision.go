package physics

// ResolveAabbCollisions pushes body out of every static obstacle it penetrates.
// Obstacles are visited in order and each resolution starts from the position
// left by the previous one. The body is snapped flush against the obstacle face
// on the least-penetrated axis and its velocity on that axis is zeroed.
// Landing on top of an obstacle sets OnGround.
func ResolveAabbCollisions(body *RigidBody, collider Collider, obstacles []Aabb) {
	for _, obs := range obstacles {
		delta, pen := overlap(body.Position, collider.HalfExtents, obs.Center, obs.HalfExtents)
		if !penetrating(pen) {
			continue
		}

		axis := separationAxis(pen)
		sign := pushSign(component(delta, axis))
		reach := component(obs.HalfExtents, axis) + component(collider.HalfExtents, axis)

		setComponent(&body.Position, axis, component(obs.Center, axis)+sign*reach)
		setComponent(&body.Velocity, axis, 0)

		if axis == AxisY && sign > 0 {
			body.OnGround = true
		}
	}
}

// ResolvePair separates two dynamic bodies that penetrate each other.
// Each body moves half the penetration along the least-penetrated axis, in
// opposite directions, and both lose their velocity on that axis. On a
// vertical contact only the upper body is marked grounded.
// It reports whether the bodies were colliding.
func ResolvePair(a, b *PhysicsObject) bool {
	delta, pen := overlap(a.Body.Position, a.Collider.HalfExtents, b.Body.Position, b.Collider.HalfExtents)
	if !penetrating(pen) {
		return false
	}

	axis := separationAxis(pen)
	sign := pushSign(component(delta, axis))
	push := sign * component(pen, axis) * 0.5

	setComponent(&a.Body.Position, axis, component(a.Body.Position, axis)+push)
	setComponent(&b.Body.Position, axis, component(b.Body.Position, axis)-push)
	setComponent(&a.Body.Velocity, axis, 0)
	setComponent(&b.Body.Velocity, axis, 0)

	if axis == AxisY {
		if sign > 0 {
			a.Body.OnGround = true
		} else {
			b.Body.OnGround = true
		}
	}
	return true
}
