// Package input turns raylib keyboard and mouse state into a per-frame Intent.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Intent is what the player asked for during one frame.
type Intent struct {
	Forward float32 // +1 W, -1 S
	Right   float32 // +1 D, -1 A
	Jump    bool    // edge-triggered
	Fire    bool    // held
	Look    rl.Vector2
}

// Moving reports whether any walk key is held.
func (i Intent) Moving() bool {
	return i.Forward != 0 || i.Right != 0
}

// Read polls raylib. Call it once per frame, before the arena update.
func Read() Intent {
	return Intent{
		Forward: axis(rl.IsKeyDown(rl.KeyW), rl.IsKeyDown(rl.KeyS)),
		Right:   axis(rl.IsKeyDown(rl.KeyD), rl.IsKeyDown(rl.KeyA)),
		Jump:    rl.IsKeyPressed(rl.KeySpace),
		Fire:    rl.IsMouseButtonDown(rl.MouseLeftButton),
		Look:    rl.GetMouseDelta(),
	}
}

func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
