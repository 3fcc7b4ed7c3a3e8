package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "log motion and facing changes")
	seed := flag.Uint64("seed", 0, "random seed for wandering (0 picks one)")
	spec := flag.String("spec", "", "spec file in prefabs/ (default wanderers.yaml)")
	watch := flag.Bool("watch", false, "reload the spec when files in prefabs/ change")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("wanderers")

	game, err := NewGame(Options{
		SpecName: *spec,
		Debug:    *debug,
		Seed:     *seed,
		Watch:    *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
