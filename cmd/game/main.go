package main

import (
	"flag"
	"log"
	"time"

	"github.com/Garsondee/Gorillas/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)
	seed := flag.Int64("seed", 0, "RNG seed (0 = current time)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	g, err := game.New(cfg, *seed)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("gorillas: seed=%d map=%dx%d placement=%s", *seed, cfg.MapWidth, cfg.MapHeight, cfg.Placement)

	w, h := g.WindowSize()
	ebiten.SetWindowTitle("Gorillas")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
