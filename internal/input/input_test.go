package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestAxis(t *testing.T) {
	assert.Equal(t, float32(0), axis(false, false))
	assert.Equal(t, float32(1), axis(true, false))
	assert.Equal(t, float32(-1), axis(false, true))
	assert.Equal(t, float32(0), axis(true, true), "opposite keys cancel")
}

func TestIntentMoving(t *testing.T) {
	assert.False(t, Intent{Jump: true, Look: rl.Vector2{X: 3}}.Moving())
	assert.True(t, Intent{Right: -1}.Moving())
}
