package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/scene"
	"github.com/milk9111/boomerang/ui"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	// pixelsPerUnit is the top down debug view zoom.
	pixelsPerUnit = 16
)

type gameOptions struct {
	debug    bool
	strict   bool
	watchDir string
}

type Game struct {
	opts   gameOptions
	logger *slog.Logger

	scene     *scene.Scene
	paused    bool
	pauseUI   *ebitenui.UI
	gameOver  *gameOverUI
	title     *ui.Button
	restart   bool
	clipboard bool
}

func NewGame(logger *slog.Logger, opts gameOptions) (*Game, error) {
	g := &Game{opts: opts, logger: logger}
	if err := g.newScene(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	g.title = ui.NewTitleButton(400, 120, func() { g.restart = true })
	g.gameOver = newGameOverUI(g)

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", slog.Any("error", err))
	} else {
		g.clipboard = true
	}
	return g, nil
}

func (g *Game) newScene() error {
	s, err := scene.New(scene.Config{
		Logger:   g.logger,
		Input:    keyboardInput{},
		Strict:   g.opts.strict,
		WatchDir: g.opts.watchDir,
	})
	if err != nil {
		return err
	}
	if g.scene != nil {
		g.scene.Close()
	}
	g.scene = s
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.copySnapshot()
	}
	if g.restart {
		g.restart = false
		g.title.Leave()
		if err := g.newScene(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.scene.Finished() {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.scene.Finished() {
		g.gameOver.setOutcome(g.scene.State())
		g.gameOver.ui.Update()
		return nil
	}

	g.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// copySnapshot puts the boss state on the clipboard as yaml.
func (g *Game) copySnapshot() {
	data, err := g.scene.Boss.Snapshot().YAML()
	if err != nil {
		g.logger.Warn("snapshot", slog.Any("error", err))
		return
	}
	if !g.clipboard {
		g.logger.Info("boss snapshot", slog.String("yaml", string(data)))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.logger.Info("boss snapshot copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	s := g.scene
	cam, _ := s.CameraView()

	project := func(p common.Vec3) (float32, float32) {
		x := baseWidth/2 + (p.X-cam.LookAt.X)*pixelsPerUnit
		y := baseHeight/2 + (p.Z-cam.LookAt.Z)*pixelsPerUnit
		return float32(x), float32(y)
	}

	ecs.ForEach3(s.World,
		component.ColliderComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ActorComponent.Kind(),
		func(e ecs.Entity, col *component.Collider, _ *component.Transform, a *component.Actor) {
			if !col.Enabled {
				return
			}
			pos, _ := ecs.WorldPosition(s.World, e)
			scale, _ := ecs.WorldScale(s.World, e)
			rot, _ := ecs.WorldRotation(s.World, e)
			center := pos.Add(rot.Rotate(col.Offset.Mul(scale)))
			half := col.Extents.Mul(scale).Abs()
			if col.Shape == component.ShapeSphere {
				r := col.Radius * scale.Abs().MaxComponent()
				half = common.Vec3{X: r, Z: r}
			}
			x, y := project(center.Sub(common.Vec3{X: half.X, Z: half.Z}))
			w, h := float32(half.X*2*pixelsPerUnit), float32(half.Z*2*pixelsPerUnit)
			vector.StrokeRect(screen, x, y, w, h, 1, tagColor(a.Tag), false)
		})

	ecs.ForEach2(s.World,
		component.EffectComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, fx *component.Effect, t *component.Transform) {
			x, y := project(t.Position)
			size := float32(t.Scale.X * pixelsPerUnit)
			clr := colornames.Orange
			if fx.Kind == component.EffectImpact {
				clr = colornames.Red
			}
			vector.StrokeRect(screen, x-size/2, y-size/2, size, size, 2, clr, false)
		})

	if s.Boss.Firing() {
		from, _ := ecs.WorldPosition(s.World, s.Boss.Entity())
		dir, _ := ecs.Forward(s.World, s.Boss.Entity())
		x0, y0 := project(from)
		x1, y1 := project(from.Add(dir.Scale(25)))
		vector.StrokeLine(screen, x0, y0, x1, y1, 4, colornames.Magenta, true)
	}

	g.drawHealthBar(screen, s.HealthBar)

	if a := s.Fade.Alpha(); a > 0 {
		vector.FillRect(screen, 0, 0, baseWidth, baseHeight, color.NRGBA{A: uint8(a * 255)}, false)
	}

	if s.Finished() {
		g.gameOver.ui.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.opts.debug {
		action, _ := s.Boss.Current()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  boss: %d hp, %s, %s (%s)  player: %d hp  [F1 copy snapshot]",
			ebiten.ActualFPS(), s.Boss.HP(), s.Boss.Phase(), action, s.Boss.Clip(), s.Player.HP()))
	}
}

func (g *Game) drawHealthBar(screen *ebiten.Image, h *ui.HealthBar) {
	r := h.Bounds()
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()), float32(r.Height()), colornames.Dimgray, false)
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Width()*h.RenderRatio), float32(r.Height()), colornames.Crimson, false)
}

func tagColor(t component.ObjectTag) color.Color {
	switch t {
	case component.TagPlayer:
		return colornames.Lightskyblue
	case component.TagBossEnemy:
		return colornames.Tomato
	case component.TagBossEnemyParts:
		return colornames.Gold
	case component.TagBoomerang:
		return colornames.Lime
	case component.TagBeam:
		return colornames.Magenta
	default:
		return colornames.Gray
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.scene != nil {
		g.scene.Close()
	}
}
