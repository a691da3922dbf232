package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boomerang/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	strict := flag.Bool("strict", false, "panic on unknown boss actions")
	watch := flag.Bool("watch", false, "hot reload specs from the prefabs directory")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory with spec overrides")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("boomerang")

	opts := gameOptions{debug: *debug, strict: *strict}
	if *watch {
		opts.watchDir = prefabs.Dir
	}
	game, err := NewGame(logger, opts)
	if err != nil {
		log.Fatal(err)
	}
	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
