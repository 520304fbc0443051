package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Garsondee/Gorillas/internal/game"
)

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var anglesFlag string
	var speedsFlag string
	var copyReport bool
	var verbose bool

	cfg := game.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)
	flag.IntVar(&runs, "runs", 5, "number of seeded rounds to survey")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&anglesFlag, "angles", "30,40,50,60,70", "comma-separated launch angles in degrees")
	flag.StringVar(&speedsFlag, "speeds", "80,100,120,140,160,180", "comma-separated launch speeds")
	flag.BoolVar(&copyReport, "clipboard", false, "copy the report to the clipboard")
	flag.BoolVar(&verbose, "verbose", false, "print the event log of each run's base round")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	angles, err := parseFloats(anglesFlag)
	if err != nil {
		fmt.Printf("error: -angles: %v\n", err)
		return
	}
	speeds, err := parseFloats(speedsFlag)
	if err != nil {
		fmt.Printf("error: -speeds: %v\n", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Throw Survey ===\n")
	fmt.Printf("runs=%d seed_base=%d seed_step=%d map=%dx%d placement=%s angles=%v speeds=%v\n\n",
		runs, seedBase, seedStep, cfg.MapWidth, cfg.MapHeight, cfg.Placement, angles, speeds)

	report, err := runSurvey(cfg, runs, seedBase, seedStep, angles, speeds)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	out := report.Format()
	fmt.Print(out)

	if verbose {
		for i := 0; i < runs; i++ {
			seed := seedBase + int64(i)*seedStep
			ts, err := game.NewTestSim(game.WithSeed(seed), withConfig(cfg))
			if err != nil {
				fmt.Printf("error: %v\n", err)
				return
			}
			fmt.Printf("\n--- Event log seed=%d ---\n%s", seed, ts.Match.Log.Format())
		}
	}

	if copyReport {
		if err := game.CopyReport(out); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Println("(report copied to clipboard)")
	}
}

func runSurvey(cfg game.Config, runs int, seedBase, seedStep int64, angles, speeds []float64) (*game.SurveyReport, error) {
	report := &game.SurveyReport{}
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := game.SurveyRound(game.SurveyParams{
			Seed:    seed,
			Angles:  angles,
			Speeds:  speeds,
			Options: []game.SimOption{withConfig(cfg)},
		})
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", seed, err)
		}
		report.Rounds = append(report.Rounds, rs)
	}
	return report, nil
}

func withConfig(cfg game.Config) game.SimOption {
	return game.WithConfig(func(c *game.Config) { *c = cfg })
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}
