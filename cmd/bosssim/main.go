// Command bosssim runs the arena without a window and reports how the fight
// went. The player is driven by a simple bot that circles the boss and
// throws whenever its boomerang is back.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/boomerang/actor"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
	"github.com/milk9111/boomerang/scene"
)

type report struct {
	Outcome  string         `yaml:"outcome"`
	Seconds  float64        `yaml:"seconds"`
	Frames   int            `yaml:"frames"`
	BossHP   int            `yaml:"boss_hp"`
	PlayerHP int            `yaml:"player_hp"`
	Phase    string         `yaml:"phase"`
	Messages map[string]int `yaml:"messages"`
	Actions  map[string]int `yaml:"actions"`
}

func main() {
	seconds := flag.Float64("seconds", 120, "simulated seconds before giving up")
	tps := flag.Int("tps", 60, "simulation steps per second")
	seed := flag.Uint64("seed", 1, "bot random seed")
	bossFile := flag.String("boss", "", "boss spec file (defaults to the embedded one)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rep, err := simulate(logger, *bossFile, *seconds, *tps, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bosssim:", err)
		os.Exit(1)
	}
	out, err := yaml.Marshal(rep)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bosssim:", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

func simulate(logger *slog.Logger, bossFile string, seconds float64, tps int, seed uint64) (*report, error) {
	if tps <= 0 {
		return nil, fmt.Errorf("tps must be positive, got %d", tps)
	}
	cfg := scene.Config{Logger: logger}
	if bossFile != "" {
		spec, err := prefabs.LoadBossSpecFile(bossFile)
		if err != nil {
			return nil, err
		}
		cfg.Boss = spec
	}

	bot := &bot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	cfg.Input = bot
	s, err := scene.New(cfg)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	bot.scene = s

	rep := &report{Messages: map[string]int{}, Actions: map[string]int{}}
	for t := messenger.CreateChargeEffect; t <= messenger.CameraShake; t++ {
		s.Messenger.Subscribe(t, func(got messenger.Type, _ any) { rep.Messages[got.String()]++ })
	}

	dt := 1 / float64(tps)
	steps := int(seconds * float64(tps))
	last := ""
	for i := 0; i < steps && !s.Finished(); i++ {
		s.Update(dt)
		if id, ok := s.Boss.Current(); ok && id.String() != last {
			last = id.String()
			rep.Actions[last]++
		}
	}

	rep.Frames = s.Frames()
	rep.Seconds = float64(rep.Frames) * dt
	rep.BossHP = s.Boss.HP()
	rep.PlayerHP = s.Player.HP()
	rep.Phase = s.Boss.Phase()
	rep.Outcome = s.State().String()
	if s.State() == scene.Playing {
		rep.Outcome = "timeout"
	}
	return rep, nil
}

// bot strafes around the boss at a fixed distance and throws whenever it
// can. Jumps are random so landing shockwaves are sometimes dodged.
type bot struct {
	scene *scene.Scene
	rng   *rand.Rand
	flip  bool
}

func (b *bot) State() actor.InputState {
	var in actor.InputState
	if b.scene == nil {
		return in
	}
	w := b.scene.World
	me, ok := ecs.WorldPosition(w, b.scene.Player.Entity())
	if !ok {
		return in
	}
	boss, _ := ecs.WorldPosition(w, b.scene.Boss.Entity())
	to := boss.Sub(me).Horizontal()
	dir, ok := to.Normalize()
	if !ok {
		return in
	}

	// Throw needs a fresh press, so strafe and aim on alternate frames.
	b.flip = !b.flip
	if to.Length() > 9 {
		in.MoveX, in.MoveZ = dir.X, dir.Z
	} else if b.flip {
		in.MoveX, in.MoveZ = -dir.Z, dir.X
	} else {
		in.MoveX, in.MoveZ = dir.X*0.1, dir.Z*0.1
	}
	in.Throw = !b.flip && b.scene.Player.Boomerang() == nil
	in.Jump = b.rng.Float64() < 0.01
	return in
}
