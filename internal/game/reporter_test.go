package game

import (
	"math"
	"strings"
	"testing"
)

func TestAimVector(t *testing.T) {
	v := AimVector(0, 0, 100)
	if !nearly(v.X, 100) || !nearly(v.Y, 0) {
		t.Fatalf("P1 flat = %+v", v)
	}
	v = AimVector(1, 90, 50)
	if math.Abs(v.X) > 1e-9 || !nearly(v.Y, -50) {
		t.Fatalf("P2 straight up = %+v", v)
	}
	v = AimVector(1, 45, 100)
	if v.X >= 0 || v.Y >= 0 {
		t.Fatalf("P2 should aim left and up, got %+v", v)
	}
}

func TestSurveyRound_Deterministic(t *testing.T) {
	p := SurveyParams{
		Seed:   17,
		Angles: []float64{30, 60},
		Speeds: []float64{120, 200},
	}
	a, err := SurveyRound(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SurveyRound(p)
	if err != nil {
		t.Fatal(err)
	}
	for player := 0; player < 2; player++ {
		if a.Throws[player] != 4 {
			t.Fatalf("P%d throws = %d, want 4", player+1, a.Throws[player])
		}
		total := 0
		for o, n := range a.Outcomes[player] {
			total += n
			if b.Outcomes[player][o] != n {
				t.Fatalf("P%d %s: %d vs %d across identical surveys", player+1, o, n, b.Outcomes[player][o])
			}
		}
		if total != a.Throws[player] {
			t.Fatalf("P%d outcomes sum to %d, want %d", player+1, total, a.Throws[player])
		}
	}
	if a.Avatars != b.Avatars || a.Buildings != b.Buildings {
		t.Fatal("same seed produced different rounds")
	}
}

func TestSurveyRound_PlayersAndCap(t *testing.T) {
	rs, err := SurveyRound(SurveyParams{
		Seed:     3,
		Angles:   []float64{20, 40, 60},
		Speeds:   []float64{100, 150},
		Players:  []int{1},
		MaxCount: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if rs.Throws[0] != 0 || rs.Throws[1] != 2 {
		t.Fatalf("throws = %v, want [0 2]", rs.Throws)
	}
}

func TestSurveyReport_Aggregates(t *testing.T) {
	r1 := &RoundSurvey{Seed: 1, Outcomes: [2]map[Outcome]int{{OutcomeHit: 1, OutcomeExplosion: 3}, {OutcomeExplosion: 4}}, Throws: [2]int{4, 4}}
	r2 := &RoundSurvey{Seed: 2, Outcomes: [2]map[Outcome]int{{OutcomeExplosion: 4}, {OutcomeHit: 2, OutcomeTimeout: 2}}, Throws: [2]int{4, 4}}
	sr := &SurveyReport{Rounds: []*RoundSurvey{r1, r2}}

	totals := sr.Totals()
	if totals[0][OutcomeExplosion] != 7 || totals[1][OutcomeHit] != 2 {
		t.Fatalf("totals = %v", totals)
	}
	// |0.25-0| and |0-0.5| average to 0.375.
	if got := sr.HitRateGap(); !nearly(got, 0.375) {
		t.Fatalf("HitRateGap = %v, want 0.375", got)
	}
	out := sr.Format()
	for _, want := range []string{"--- Seed 1 ---", "P1 throws=4 hit_rate=0.25", "P2 explosion=4", "mean_hit_rate_gap=0.375"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if (&SurveyReport{}).HitRateGap() != 0 {
		t.Fatal("empty report gap should be 0")
	}
}
