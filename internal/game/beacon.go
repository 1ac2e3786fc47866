package game

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	idleIntensity = 0.2
	pulseRate     = 3
)

// Beacon is the energy artifact at the arena center. Standing on the ground
// within Radius of the origin activates it; the first activation unlocks the
// technology and shows the message for MessageSeconds.
type Beacon struct {
	Radius         float32
	MessageSeconds float32
	Message        string

	Active    bool
	Unlocked  bool
	Intensity float32

	pulse        float32
	messageTimer float32
}

func NewBeacon(radius, messageSeconds float32, message string) Beacon {
	return Beacon{
		Radius:         radius,
		MessageSeconds: messageSeconds,
		Message:        message,
		Intensity:      idleIntensity,
	}
}

// Update advances the beacon for a player at pos. It reports whether the
// beacon was activated on this frame.
func (b *Beacon) Update(pos rl.Vector3, grounded bool, dt float32) bool {
	activated := false
	if math32.Sqrt(pos.X*pos.X+pos.Z*pos.Z) < b.Radius {
		if !b.Active && grounded {
			b.Active = true
			activated = true
			if !b.Unlocked {
				b.Unlocked = true
				b.messageTimer = b.MessageSeconds
			}
		}
		b.pulse += dt * pulseRate
		b.Intensity = idleIntensity + 0.8*(0.5+0.5*math32.Sin(b.pulse))
	} else {
		if b.Active {
			b.Active = false
			b.pulse = 0
		}
		b.Intensity = idleIntensity
	}

	if b.messageTimer > 0 {
		b.messageTimer -= dt
	}
	return activated
}

// MessageVisible reports whether the unlock message is still on screen.
func (b *Beacon) MessageVisible() bool {
	return b.messageTimer > 0
}
