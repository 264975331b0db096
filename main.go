package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boneyard/logger"
	"github.com/milk9111/boneyard/scene"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	seed := flag.Uint("seed", 0, "seed skeleton randomness for reproducible runs (0 = crypto)")
	skeletons := flag.Int("skeletons", 3, "number of skeletons to spawn")
	flag.Parse()

	log := logger.New(os.Stdout)

	opts := scene.Options{
		Skeletons: *skeletons,
		Seed:      uint32(*seed),
		Log:       log,
	}
	game, err := NewGame(opts, *debug, log)
	if err != nil {
		log.WithError(err).Fatal("boneyard: build scene")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("boneyard")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("boneyard: run")
	}
}
