package game

import (
	"fmt"
	"time"

	"astroforge/internal/audio"
	"astroforge/internal/config"
	"astroforge/internal/input"
	"astroforge/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	windowTitle  = "AstroForge"
	windowWidth  = 1024
	windowHeight = 768
)

var (
	colorFloor        = rl.NewColor(60, 64, 80, 255)
	colorPlayer       = rl.NewColor(99, 102, 241, 255)
	colorEnemy        = rl.Maroon
	colorPlayerBullet = rl.Orange
	colorEnemyBullet  = rl.Gold
)

type Game struct {
	Arena     *Arena
	DebugMode bool
	SelfTest  bool

	cfg      config.Config
	font     rl.Font
	logger   *zap.Logger
	audio    *audio.Manager
	updateMs float64
	reported bool
}

func New(cfg config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	arena, err := NewArena(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Game{
		Arena:  arena,
		cfg:    cfg,
		logger: logger,
		audio:  audio.New(cfg.Audio, logger),
	}, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()
	render.SetupStyle()

	font, err := render.LoadFont(g.cfg.HUD.Font, g.cfg.HUD.FontSize, g.cfg.Arena.Message, g.cfg.HUD.SelfTestText)
	if err != nil {
		g.logger.Warn("hud font not loaded, using default", zap.Error(err))
	}
	g.font = font
	if g.cfg.HUD.Font != "" && err == nil {
		defer rl.UnloadFont(font)
	}

	if err := g.audio.Open(); err != nil {
		g.logger.Warn("audio disabled", zap.Error(err))
	}
	defer g.audio.Close()

	for !rl.WindowShouldClose() {
		g.Update()
		render.Draw(g.Scene())

		if g.SelfTest && !g.reported {
			g.reportSelfTest(render.FontHas(g.font))
			g.reported = true
		}
	}
}

// EnableSelfTest pins the self-test text on screen and pauses the beacon so
// nothing else competes for the overlay.
func (g *Game) EnableSelfTest() {
	g.SelfTest = true
	g.Arena.BeaconPaused = true
}

// reportSelfTest logs whether every glyph of the self-test text exists in the
// HUD font. It runs after the first frame drew the text.
func (g *Game) reportSelfTest(has func(rune) bool) bool {
	text := g.cfg.HUD.SelfTestText
	if missing := render.MissingGlyphs(text, has); len(missing) > 0 {
		g.logger.Warn("overlay self-test failed",
			zap.String("font", g.cfg.HUD.Font),
			zap.String("missing", string(missing)),
			zap.Int("missing_count", len(missing)),
		)
		return false
	}
	g.logger.Info("overlay self-test ok", zap.String("text", text), zap.String("font", g.cfg.HUD.Font))
	return true
}

func (g *Game) Update() {
	updateStart := time.Now()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	events := g.Arena.Update(input.Read(), rl.GetFrameTime())

	p := g.Arena.Player
	g.audio.SetListener(p.View.Eye(p.Body.Position), p.View.LookDirection(), rl.Vector3{Y: 1})
	g.playCues(events)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) playCues(events []Event) {
	for _, ev := range events {
		cue, ok := CueFor(ev.Kind)
		if !ok {
			continue
		}
		if positional(ev.Kind) {
			g.audio.PlayAt(cue, ev.Position)
		} else {
			g.audio.Play(cue)
		}
	}
}

// Scene describes the current frame for the renderer.
func (g *Game) Scene() render.Scene {
	a := g.Arena
	p := a.Player

	boxes := make([]render.Box, 0, len(a.Obstacles())+2+len(a.Bullets))
	boxes = append(boxes, render.Box{Bounds: a.Obstacles()[0], Color: colorFloor, Wires: true})
	for _, art := range a.Artifacts() {
		boxes = append(boxes, render.Box{Bounds: art, Color: render.ArtifactColor(a.Beacon.Intensity), Wires: true})
	}
	boxes = append(boxes, render.Box{Bounds: p.Collider.Bounds(p.Body.Position), Color: colorPlayer})
	if a.Enemy.Alive() {
		boxes = append(boxes, render.Box{Bounds: a.Enemy.Collider.Bounds(a.Enemy.Body.Position), Color: colorEnemy, Wires: true})
	}
	for _, b := range a.Bullets {
		color := colorPlayerBullet
		if b.Owner == OwnerEnemy {
			color = colorEnemyBullet
		}
		boxes = append(boxes, render.Box{Bounds: b.Collider.Bounds(b.Body.Position), Color: color})
	}

	hud := render.HUD{
		PlayerHealth: p.Health,
		PlayerMax:    g.cfg.Player.Health,
		EnemyMax:     g.cfg.Enemy.Health,
		ShowEnemy:    a.Enemy != nil,
	}
	if a.Enemy != nil {
		hud.EnemyHealth = a.Enemy.Health
	}
	switch {
	case g.SelfTest:
		hud.Message = g.cfg.HUD.SelfTestText
	case a.Beacon.MessageVisible():
		hud.Message = a.Beacon.Message
	}
	if g.DebugMode {
		hud.Debug = fmt.Sprintf("frame %d | bullets %d | update %.2f ms | fps %d",
			a.Frame(), len(a.Bullets), g.updateMs, rl.GetFPS())
	}

	return render.Scene{
		Camera: p.View.Camera3D(p.Body.Position),
		Boxes:  boxes,
		HUD:    hud,
	}
}

// CueFor maps an event to the sound it plays, if any.
func CueFor(kind EventKind) (audio.Cue, bool) {
	switch kind {
	case EventArtifactActivated:
		return audio.CueActivation, true
	case EventShot:
		return audio.CueShot, true
	case EventPlayerHit, EventEnemyHit, EventEnemyDown:
		return audio.CueHit, true
	case EventLanded:
		return audio.CueLand, true
	}
	return 0, false
}

// positional events are heard from where they happened; the rest play centered.
func positional(kind EventKind) bool {
	switch kind {
	case EventShot, EventEnemyHit, EventEnemyDown:
		return true
	}
	return false
}
