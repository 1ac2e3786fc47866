package physics

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Digest hashes the position, velocity and ground flag of every body in index
// order. Two runs with equal digests ended in bit-identical states.
func Digest(objects []PhysicsObject) uint64 {
	d := xxhash.New()
	var buf [25]byte
	for _, obj := range objects {
		b := obj.Body
		putVector(buf[0:12], b.Position)
		putVector(buf[12:24], b.Velocity)
		buf[24] = 0
		if b.OnGround {
			buf[24] = 1
		}
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func putVector(dst []byte, v rl.Vector3) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v.Z))
}
