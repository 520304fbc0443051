package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Gorillas/internal/game"
)

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 30, 45.5,,60 ")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{30, 45.5, 60}
	if len(got) != len(want) {
		t.Fatalf("parseFloats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseFloats = %v, want %v", got, want)
		}
	}

	if _, err := parseFloats("10,abc"); err == nil || !strings.Contains(err.Error(), "abc") {
		t.Fatalf("expected a bad number error, got %v", err)
	}
	if _, err := parseFloats(" , "); err == nil {
		t.Fatal("expected an error for an empty list")
	}
}

func TestRunSurvey_SeedsAndDeterminism(t *testing.T) {
	cfg := game.DefaultConfig()
	angles := []float64{35, 55}
	speeds := []float64{110, 170}

	a, err := runSurvey(cfg, 3, 100, 7, angles, speeds)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Rounds) != 3 {
		t.Fatalf("rounds = %d, want 3", len(a.Rounds))
	}
	for i, rs := range a.Rounds {
		if want := int64(100 + 7*i); rs.Seed != want {
			t.Fatalf("round %d seed = %d, want %d", i, rs.Seed, want)
		}
	}

	b, err := runSurvey(cfg, 3, 100, 7, angles, speeds)
	if err != nil {
		t.Fatal(err)
	}
	if a.Format() != b.Format() {
		t.Fatalf("identical surveys differ:\n%s\n---\n%s", a.Format(), b.Format())
	}
}

func TestRunSurvey_RejectsDegenerateConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.BuildingMinHeight, cfg.BuildingMaxHeight = 8, 8
	if _, err := runSurvey(cfg, 1, 1, 1, []float64{45}, []float64{100}); err == nil {
		t.Fatal("expected an error for a one-value height range")
	}
}
