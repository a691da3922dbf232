// Package scene assembles the arena: world, systems, message bus, fade,
// camera and actors, updated in a fixed order each frame.
package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/boomerang/actor"
	"github.com/milk9111/boomerang/boss"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/fade"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
	"github.com/milk9111/boomerang/ui"
)

type State uint8

const (
	Playing State = iota
	Victory
	GameOver
)

func (s State) String() string {
	switch s {
	case Victory:
		return "victory"
	case GameOver:
		return "game_over"
	default:
		return "playing"
	}
}

// Config selects the inputs of a scene. Zero values load the embedded specs.
type Config struct {
	Logger *slog.Logger
	Input  actor.Input
	Boss   *prefabs.BossSpec
	Player *prefabs.PlayerSpec
	Scene  *prefabs.SceneSpec
	// Strict panics on unknown boss actions.
	Strict bool
	// WatchDir enables hot reload of specs in that directory.
	WatchDir string
}

// Scene runs one fight. Each Update runs actors, then the rigidbody,
// collision, animation, TTL and camera systems, then the fade.
type Scene struct {
	World      *ecs.World
	Messenger  *messenger.Messenger
	Fade       *fade.Manager
	Camera     *system.CameraSystem
	Collisions *system.CollisionSystem

	Boss      *boss.Enemy
	Player    *actor.Player
	HealthBar *ui.HealthBar

	spec      *prefabs.SceneSpec
	systems   *ecs.Scheduler
	actors    []actor.Updater
	effects   *actor.EffectSpawner
	cameraEnt ecs.Entity
	watcher   *prefabs.Watcher
	logger    *slog.Logger
	stop      []func()

	state    State
	finished bool
	frames   int
}

func New(cfg Config) (*Scene, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := loadSpecs(&cfg); err != nil {
		return nil, err
	}

	s := &Scene{
		World:      ecs.NewWorld(),
		Messenger:  messenger.New(cfg.Logger),
		Fade:       fade.NewManager(cfg.Logger),
		Camera:     system.NewCameraSystem(),
		Collisions: system.NewCollisionSystem(cfg.Logger),
		spec:       cfg.Scene,
		logger:     cfg.Logger.With(slog.String("scene", cfg.Scene.Name)),
	}
	s.systems = ecs.NewScheduler(
		system.NewRigidbodySystem(cfg.Scene.Gravity),
		s.Collisions,
		system.NewAnimationSystem(),
		system.NewTTLSystem(),
		s.Camera,
	)

	if err := s.spawn(cfg); err != nil {
		s.Close()
		return nil, err
	}

	if cfg.WatchDir != "" {
		w, err := prefabs.NewWatcher(cfg.WatchDir)
		if err != nil {
			s.logger.Warn("spec hot reload disabled", slog.String("dir", cfg.WatchDir), slog.Any("error", err))
		} else {
			s.watcher = w
		}
	}

	s.Fade.Start(fade.FadeIn, cfg.Scene.Fade.In, nil)
	return s, nil
}

func loadSpecs(cfg *Config) error {
	var err error
	if cfg.Scene == nil {
		if cfg.Scene, err = prefabs.LoadSceneSpec(); err != nil {
			return err
		}
	}
	if cfg.Player == nil {
		if cfg.Player, err = prefabs.LoadPlayerSpec(); err != nil {
			return err
		}
	}
	if cfg.Boss == nil {
		if cfg.Boss, err = prefabs.LoadBossSpec(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) spawn(cfg Config) error {
	if _, err := actor.NewStage(s.World, cfg.Scene.Stage); err != nil {
		return err
	}

	deps := actor.Deps{World: s.World, Messenger: s.Messenger, Collisions: s.Collisions, Logger: cfg.Logger}
	player, err := actor.NewPlayer(deps, cfg.Player, cfg.Input)
	if err != nil {
		return err
	}
	s.Player = player

	enemy, err := boss.New(boss.Deps{
		World:      s.World,
		Messenger:  s.Messenger,
		Camera:     s.Camera,
		Fade:       s.Fade,
		Collisions: s.Collisions,
		Logger:     cfg.Logger,
		Gravity:    cfg.Scene.Gravity,
		Strict:     cfg.Strict,
	}, cfg.Boss, player.Entity())
	if err != nil {
		return err
	}
	s.Boss = enemy
	s.actors = []actor.Updater{player, enemy}

	if s.effects, err = actor.NewEffectSpawner(deps, cfg.Scene.Effects); err != nil {
		return err
	}
	s.HealthBar = ui.NewHealthBar(s.Messenger,
		ui.NewElement(ui.Vec2{X: 640, Y: 40}, ui.Vec2{X: 1, Y: 1}, 600, 16, ui.TopCenter), 6)

	s.cameraEnt = ecs.CreateEntity(s.World)
	cam := &component.Camera{Offset: cfg.Scene.Camera.Offset.Vec(), Smoothness: cfg.Scene.Camera.Smoothness}
	if err := ecs.Add(s.World, s.cameraEnt, component.CameraComponent.Kind(), cam); err != nil {
		return fmt.Errorf("scene: camera: %w", err)
	}
	s.Camera.SetTarget(player.Entity())

	s.stop = append(s.stop,
		messenger.Listen(s.Messenger, messenger.CameraShake, func(m messenger.Shake) {
			s.Camera.Shake(m.Amount)
		}),
		s.Messenger.Subscribe(messenger.BossDefeated, func(messenger.Type, any) { s.end(Victory) }),
		s.Messenger.Subscribe(messenger.PlayerDeath, func(messenger.Type, any) { s.end(GameOver) }),
		messenger.Listen(s.Messenger, messenger.BossPhaseChange, func(m messenger.PhaseChange) {
			s.logger.Info("phase", slog.Int("index", m.Phase), slog.String("name", m.Name))
		}),
	)
	return nil
}

// end fades out once the fight is decided. The first outcome wins.
func (s *Scene) end(state State) {
	if s.state != Playing {
		return
	}
	s.state = state
	s.logger.Info("fight over", slog.String("state", state.String()), slog.Int("frames", s.frames))
	s.Fade.Start(fade.FadeOut, s.spec.Fade.Out, func(fade.Mode) { s.finished = true })
}

// Update advances the scene by dt seconds.
func (s *Scene) Update(dt float64) {
	s.frames++
	s.pollReloads()

	for _, a := range s.actors {
		a.UpdateActor(dt)
	}
	s.systems.Update(s.World, dt)
	s.Fade.Update(dt)
	s.HealthBar.Update(dt)
}

func (s *Scene) pollReloads() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			if err := s.Reload(name); err != nil {
				s.logger.Warn("reload failed", slog.String("file", name), slog.Any("error", err))
			}
		case err, ok := <-s.watcher.Errors:
			if ok {
				s.logger.Warn("watch error", slog.Any("error", err))
			}
		default:
			return
		}
	}
}

// ErrNotReloadable is returned for specs that only apply to a new scene.
var ErrNotReloadable = errors.New("scene: spec needs a restart")

// Reload re-reads a spec file by name. Only the boss spec applies live.
func (s *Scene) Reload(name string) error {
	switch name {
	case prefabs.BossFile:
		spec, err := prefabs.LoadBossSpecFile(name)
		if err != nil {
			return err
		}
		if err := s.Boss.Reload(spec); err != nil {
			return err
		}
		s.logger.Info("boss spec reloaded")
		return nil
	case prefabs.PlayerFile, prefabs.SceneFile:
		return fmt.Errorf("%w: %s", ErrNotReloadable, name)
	default:
		return nil
	}
}

func (s *Scene) State() State { return s.state }

// Finished reports that the closing fade has completed.
func (s *Scene) Finished() bool { return s.finished }

func (s *Scene) Frames() int { return s.frames }

// CameraView returns the scene camera.
func (s *Scene) CameraView() (component.Camera, bool) {
	cam, ok := ecs.Get(s.World, s.cameraEnt, component.CameraComponent.Kind())
	if !ok {
		return component.Camera{}, false
	}
	return *cam, true
}

// Close releases listeners and stops the spec watcher.
func (s *Scene) Close() {
	for _, fn := range s.stop {
		fn()
	}
	s.stop = nil
	if s.effects != nil {
		s.effects.Close()
	}
	if s.HealthBar != nil {
		s.HealthBar.Close()
	}
	if s.Player != nil {
		s.Player.Close()
	}
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.logger.Warn("close watcher", slog.Any("error", err))
		}
		s.watcher = nil
	}
}
