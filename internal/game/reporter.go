package game

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SurveyParams describes a sweep of launch vectors fired at fresh copies of
// one seeded round.
type SurveyParams struct {
	Seed     int64
	Angles   []float64 // degrees above the horizontal, toward the opponent
	Speeds   []float64 // pixels per unit of trajectory time
	Options  []SimOption
	Players  []int // throwers to survey; empty means both
	FrameMs  float64
	MaxCount int // optional cap on throws per player, 0 for none
}

// RoundSurvey is the outcome distribution for one seeded round.
type RoundSurvey struct {
	Seed      int64
	Buildings int
	Avatars   [2]Point
	Outcomes  [2]map[Outcome]int
	Throws    [2]int
	BestShot  [2]*ThrowRecord // fastest hit per player
}

// HitRate returns the fraction of a player's surveyed throws that hit.
func (rs *RoundSurvey) HitRate(player int) float64 {
	if rs.Throws[player] == 0 {
		return 0
	}
	return float64(rs.Outcomes[player][OutcomeHit]) / float64(rs.Throws[player])
}

// SurveyRound fires every angle/speed combination for each surveyed player,
// each against a freshly rebuilt copy of the same seeded round.
func SurveyRound(p SurveyParams) (*RoundSurvey, error) {
	players := p.Players
	if len(players) == 0 {
		players = []int{0, 1}
	}
	frameMs := p.FrameMs
	if frameMs <= 0 {
		frameMs = DefaultFrameMs
	}

	base, err := NewTestSim(append([]SimOption{WithSeed(p.Seed)}, p.Options...)...)
	if err != nil {
		return nil, err
	}
	rs := &RoundSurvey{
		Seed:      p.Seed,
		Buildings: len(base.Match.Buildings),
		Avatars:   base.Match.Avatars,
		Outcomes:  [2]map[Outcome]int{{}, {}},
	}

	for _, player := range players {
		count := 0
		for _, angle := range p.Angles {
			for _, speed := range p.Speeds {
				if p.MaxCount > 0 && count >= p.MaxCount {
					break
				}
				opts := append([]SimOption{WithSeed(p.Seed), WithFrameMs(frameMs)}, p.Options...)
				opts = append(opts,
					WithAvatars(base.Match.Avatars[0], base.Match.Avatars[1]),
					WithStartingPlayer(player))
				ts, err := NewTestSim(opts...)
				if err != nil {
					return nil, err
				}
				rec, ok := ts.RunThrow(AimVector(player, angle, speed))
				if !ok {
					continue
				}
				count++
				rs.Throws[player]++
				rs.Outcomes[player][rec.Outcome]++
				if rec.Outcome == OutcomeHit {
					best := rs.BestShot[player]
					if best == nil || rec.ElapsedMs < best.ElapsedMs {
						r := rec
						rs.BestShot[player] = &r
					}
				}
			}
		}
	}
	return rs, nil
}

// AimVector converts an angle above the horizontal and a speed into a launch
// velocity pointed at the given player's opponent.
func AimVector(player int, angleDeg, speed float64) Vec {
	rad := angleDeg * math.Pi / 180
	dir := 1.0
	if player == 1 {
		dir = -1
	}
	return Vec{X: dir * speed * math.Cos(rad), Y: -speed * math.Sin(rad)}
}

// SurveyReport aggregates surveys across seeds.
type SurveyReport struct {
	Rounds []*RoundSurvey
}

// Totals sums outcomes per player across every round.
func (sr *SurveyReport) Totals() [2]map[Outcome]int {
	out := [2]map[Outcome]int{{}, {}}
	for _, rs := range sr.Rounds {
		for p := 0; p < 2; p++ {
			for o, n := range rs.Outcomes[p] {
				out[p][o] += n
			}
		}
	}
	return out
}

// HitRateGap is the mean absolute difference between the players' hit rates,
// a rough measure of how lopsided the generated maps are.
func (sr *SurveyReport) HitRateGap() float64 {
	if len(sr.Rounds) == 0 {
		return 0
	}
	sum := 0.0
	for _, rs := range sr.Rounds {
		sum += math.Abs(rs.HitRate(0) - rs.HitRate(1))
	}
	return sum / float64(len(sr.Rounds))
}

// Format renders the report as plain text.
func (sr *SurveyReport) Format() string {
	var b strings.Builder
	for _, rs := range sr.Rounds {
		fmt.Fprintf(&b, "--- Seed %d ---\n", rs.Seed)
		fmt.Fprintf(&b, "buildings=%d avatars=P1%s P2%s\n", rs.Buildings, rs.Avatars[0], rs.Avatars[1])
		for p := 0; p < 2; p++ {
			if rs.Throws[p] == 0 {
				continue
			}
			fmt.Fprintf(&b, "P%d throws=%d hit_rate=%.2f outcomes: %s\n",
				p+1, rs.Throws[p], rs.HitRate(p), formatOutcomes(rs.Outcomes[p]))
			if best := rs.BestShot[p]; best != nil {
				fmt.Fprintf(&b, "P%d best_hit: v=(%.1f,%.1f) flight=%.0fms\n",
					p+1, best.Velocity.X, best.Velocity.Y, best.ElapsedMs)
			}
		}
		b.WriteByte('\n')
	}
	totals := sr.Totals()
	b.WriteString("=== Aggregate ===\n")
	for p := 0; p < 2; p++ {
		fmt.Fprintf(&b, "P%d %s\n", p+1, formatOutcomes(totals[p]))
	}
	fmt.Fprintf(&b, "mean_hit_rate_gap=%.3f\n", sr.HitRateGap())
	return b.String()
}

// MatchSummary renders the scores and the throw outcomes of a live match.
func MatchSummary(m *Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "round=%d score P1=%d P2=%d\n", m.RoundNumber, m.Scores[0], m.Scores[1])
	for p := 0; p < 2; p++ {
		counts := map[Outcome]int{}
		for _, e := range m.Log.FilterPlayer(p) {
			if !e.is("throw", "outcome") {
				continue
			}
			for o := OutcomeOutOfBounds; o <= OutcomeTimeout; o++ {
				if strings.HasPrefix(e.Value, o.String()+" ") {
					counts[o]++
				}
			}
		}
		fmt.Fprintf(&b, "P%d %s\n", p+1, formatOutcomes(counts))
	}
	return b.String()
}

func formatOutcomes(m map[Outcome]int) string {
	keys := make([]Outcome, 0, len(m))
	for o := range m {
		keys = append(keys, o)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, 0, len(keys))
	for _, o := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", o, m[o]))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
