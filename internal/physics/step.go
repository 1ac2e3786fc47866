package physics

import "fmt"

// PhysicsObject is a per-frame view pairing a borrowed body with its collider.
// Callers build a fresh slice of these every frame and must not keep them.
type PhysicsObject struct {
	Body     *RigidBody
	Collider Collider
}

// Pair holds the indices of two colliding objects, I < J.
type Pair struct {
	I, J int
}

// Step advances every object by dt with the default gravity.
// See World.Step for the ordering guarantees.
func Step(objects []PhysicsObject, obstacles []Aabb, dt float32) []Pair {
	return step(objects, obstacles, G, dt)
}

func step(objects []PhysicsObject, obstacles []Aabb, g, dt float32) []Pair {
	mustBeDisjoint(objects)

	for i := range objects {
		obj := &objects[i]
		obj.Body.OnGround = false
		ApplyGravityWith(obj.Body, g)
		Integrate(obj.Body, dt)
		ResolveAabbCollisions(obj.Body, obj.Collider, obstacles)
	}

	var pairs []Pair
	for i := 0; i < len(objects); i++ {
		for j := i + 1; j < len(objects); j++ {
			a, b := pairAt(objects, i, j)
			if ResolvePair(a, b) {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}
	return pairs
}

// pairAt hands out two distinct elements of objects by splitting the slice at j.
// Asking for the same element twice is a programming error.
func pairAt(objects []PhysicsObject, i, j int) (*PhysicsObject, *PhysicsObject) {
	if i < 0 || i >= j {
		panic(fmt.Sprintf("physics: invalid pair (%d, %d)", i, j))
	}
	head, tail := objects[:j], objects[j:]
	return &head[i], &tail[0]
}

// mustBeDisjoint panics when two entries borrow the same body.
func mustBeDisjoint(objects []PhysicsObject) {
	for i := range objects {
		if objects[i].Body == nil {
			panic(fmt.Sprintf("physics: object %d has no body", i))
		}
		for j := i + 1; j < len(objects); j++ {
			if objects[i].Body == objects[j].Body {
				panic(fmt.Sprintf("physics: objects %d and %d share one body", i, j))
			}
		}
	}
}
