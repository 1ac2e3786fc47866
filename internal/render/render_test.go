package render

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		cur, full int
		want      float32
	}{
		{100, 100, 1},
		{50, 100, 0.5},
		{0, 100, 0},
		{-10, 100, 0},
		{150, 100, 1},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, healthFraction(tt.cur, tt.full), "%d/%d", tt.cur, tt.full)
	}
}

func TestHealthLabel(t *testing.T) {
	assert.Equal(t, "40/50", healthLabel(40, 50))
	assert.Equal(t, "0/50", healthLabel(-5, 50))
}

func TestHudLayoutStaysOnScreen(t *testing.T) {
	for _, size := range [][2]int32{{1024, 768}, {1920, 1080}} {
		l := hudLayout(size[0], size[1])
		for _, r := range []rl.Rectangle{l.Player, l.Enemy, l.Message} {
			assert.GreaterOrEqual(t, r.X, float32(0))
			assert.GreaterOrEqual(t, r.Y, float32(0))
			assert.LessOrEqual(t, r.X+r.Width, float32(size[0]))
			assert.LessOrEqual(t, r.Y+r.Height, float32(size[1]))
		}
	}
}

func TestArtifactColorBrightens(t *testing.T) {
	dim := ArtifactColor(0.2)
	bright := ArtifactColor(1)

	assert.Equal(t, colorArtifact, bright)
	assert.Less(t, dim.G, bright.G)
	assert.Equal(t, ArtifactColor(1), ArtifactColor(3), "intensity is clamped")
}
