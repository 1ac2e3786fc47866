// Package render draws a Scene with raylib. It knows nothing about game rules;
// callers describe what is on screen and Draw puts it there.
package render

import (
	"fmt"

	"astroforge/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark   = rl.NewColor(18, 18, 24, 255)
	colorBgBar    = rl.NewColor(32, 32, 44, 255)
	colorAccent   = rl.NewColor(99, 102, 241, 255)
	colorText     = rl.NewColor(230, 230, 240, 255)
	colorArtifact = rl.NewColor(80, 220, 255, 255)
)

// Box is one axis-aligned cube to draw.
type Box struct {
	Bounds physics.Aabb
	Color  rl.Color
	Wires  bool
}

// HUD is the 2D overlay.
type HUD struct {
	PlayerHealth, PlayerMax int
	EnemyHealth, EnemyMax   int
	ShowEnemy               bool
	Message                 string
	Debug                   string
}

type Scene struct {
	Camera rl.Camera3D
	Boxes  []Box
	HUD    HUD
}

// SetupStyle applies the HUD theme. Call once after the window exists.
func SetupStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgBar))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

// Draw renders one frame.
func Draw(s Scene) {
	rl.BeginDrawing()
	rl.ClearBackground(colorBgDark)

	rl.BeginMode3D(s.Camera)
	for _, b := range s.Boxes {
		drawBox(b)
	}
	rl.EndMode3D()

	drawHUD(s.HUD, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	rl.EndDrawing()
}

func drawBox(b Box) {
	size := rl.Vector3Scale(b.Bounds.HalfExtents, 2)
	rl.DrawCubeV(b.Bounds.Center, size, b.Color)
	if b.Wires {
		rl.DrawBoundingBox(b.Bounds.BoundingBox(), rl.Fade(rl.Black, 0.4))
	}
}

func drawHUD(h HUD, width, height int32) {
	layout := hudLayout(width, height)

	gui.ProgressBar(layout.Player, "HP", healthLabel(h.PlayerHealth, h.PlayerMax),
		healthFraction(h.PlayerHealth, h.PlayerMax), 0, 1)
	if h.ShowEnemy {
		gui.ProgressBar(layout.Enemy, "ENEMY", healthLabel(h.EnemyHealth, h.EnemyMax),
			healthFraction(h.EnemyHealth, h.EnemyMax), 0, 1)
	}
	if h.Message != "" {
		gui.Label(layout.Message, h.Message)
	}
	if h.Debug != "" {
		rl.DrawText(h.Debug, 10, height-24, 16, colorText)
	}

	// Crosshair
	cx, cy := width/2, height/2
	rl.DrawLine(cx-6, cy, cx+6, cy, colorText)
	rl.DrawLine(cx, cy-6, cx, cy+6, colorText)
}

// Layout holds the HUD rectangles for a screen size.
type Layout struct {
	Player  rl.Rectangle
	Enemy   rl.Rectangle
	Message rl.Rectangle
}

func hudLayout(width, height int32) Layout {
	const barW, barH, margin = 220, 20, 16
	w, h := float32(width), float32(height)
	return Layout{
		Player:  rl.Rectangle{X: margin + 40, Y: h - margin - barH, Width: barW, Height: barH},
		Enemy:   rl.Rectangle{X: w - margin - barW, Y: margin, Width: barW, Height: barH},
		Message: rl.Rectangle{X: w/2 - 250, Y: h / 4, Width: 500, Height: 32},
	}
}

func healthFraction(cur, full int) float32 {
	if full <= 0 || cur <= 0 {
		return 0
	}
	if cur >= full {
		return 1
	}
	return float32(cur) / float32(full)
}

func healthLabel(cur, full int) string {
	if cur < 0 {
		cur = 0
	}
	return fmt.Sprintf("%d/%d", cur, full)
}

// ArtifactColor tints the artifact blocks by beacon intensity in [0, 1].
func ArtifactColor(intensity float32) rl.Color {
	return rl.ColorBrightness(colorArtifact, rl.Clamp(intensity, 0, 1)-1)
}
