package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/Garsondee/Gorillas/internal/game"
	"github.com/gdamore/tcell/v2"
)

const (
	framesPerSecond  = 30
	roundOverDelayMs = 2500
)

func main() {
	cfg := game.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)
	seed := flag.Int64("seed", 0, "RNG seed (0 = current time)")
	cellW := flag.Int("cell-w", 8, "map pixels per terminal column")
	cellH := flag.Int("cell-h", 16, "map pixels per terminal row")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *cellW <= 0 || *cellH <= 0 {
		log.Fatalf("cell size must be positive, got %dx%d", *cellW, *cellH)
	}
	m, err := game.NewMatch(cfg, rand.New(rand.NewSource(*seed))) // #nosec G404 -- game only
	if err != nil {
		log.Fatal(err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.Fatal(err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	run(s, newTermView(s, m, *cellW, *cellH))
}

// run is the single loop that owns the match. Terminal events arrive over a
// channel from the polling goroutine.
func run(s tcell.Screen, v *termView) {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frameMs := 1000.0 / framesPerSecond
	tick := time.NewTicker(time.Second / framesPerSecond)
	defer tick.Stop()

	overMs := 0.0
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventMouse:
				v.handleMouse(e)
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
					return
				}
				if e.Rune() == 'n' {
					overMs = 0
					v.match.NextRound()
				}
			}
		case <-tick.C:
			switch v.match.Phase {
			case game.PhaseInFlight:
				v.match.Advance(frameMs)
			case game.PhaseRoundOver:
				overMs += frameMs
				if overMs >= roundOverDelayMs {
					overMs = 0
					v.match.NextRound()
				}
			}
			v.render()
		}
	}
}
