package game

import (
	"fmt"
	"math/rand"
)

// Aim is the drag gesture in progress.
type Aim struct {
	Active  bool
	Start   Point
	Current Point
}

// Match is the whole per-session game state: the current round's skyline,
// avatars and turn, the throw in flight, and the score. It never schedules
// itself; a front end drives it by calling Advance once per frame.
type Match struct {
	Cfg     Config
	Sprites *SpriteSet
	Sky     *Skyline
	Log     *SimLog
	Msgs    *ThoughtLog

	Buildings   []Building
	Avatars     [2]Point
	Round       RoundState
	RoundNumber int
	Phase       Phase
	Winner      int // valid in PhaseRoundOver
	Scores      [2]int
	Aim         Aim

	throw   *Throw
	elapsed float64
	last    StepResult

	rng    *rand.Rand
	gen    *LayoutGenerator
	policy PlacementPolicy
}

// NewMatch validates cfg and starts the first round. Player 0 throws first
// in round one.
func NewMatch(cfg Config, rng *rand.Rand) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := NewLayoutGenerator(cfg)
	if err != nil {
		return nil, err
	}
	policy, err := NewPlacementPolicy(cfg)
	if err != nil {
		return nil, err
	}
	m := &Match{
		Cfg:     cfg,
		Sprites: NewSpriteSet(cfg),
		Sky:     NewSkyline(cfg.PixelWidth(), cfg.PixelHeight()),
		Log:     NewSimLog(false),
		Msgs:    NewThoughtLog(),
		rng:     rng,
		gen:     gen,
		policy:  policy,
	}
	m.startRound(RoundState{}, gen.Generate(rng), nil)
	return m, nil
}

// NextRound drops any throw, picks a random starting player and regenerates
// the skyline and avatar positions.
func (m *Match) NextRound() {
	m.startRound(m.Round.NextRound(m.rng), m.gen.Generate(m.rng), nil)
}

// startRound paints buildings onto a fresh skyline and stands the avatars on
// it. A nil avatars asks the placement policy.
func (m *Match) startRound(round RoundState, buildings []Building, avatars *[2]Point) {
	m.Cancel()
	m.RoundNumber++
	m.Round = round
	m.Phase = PhaseAiming
	m.Winner = -1
	m.Buildings = buildings

	m.Sky.Reset()
	for _, b := range buildings {
		RenderBuilding(m.Sky, m.Cfg, b, m.rng)
	}
	m.Log.Add(m.RoundNumber, 0, "--", "layout", "generated",
		fmt.Sprintf("%d buildings", len(buildings)), float64(len(buildings)))

	if avatars != nil {
		m.Avatars = *avatars
	} else {
		pos, err := m.policy.Place(buildings, m.Sky, m.rng)
		if err != nil {
			// Whatever the policy returned is still usable, if degenerate.
			m.Log.Add(m.RoundNumber, 0, "--", "placement", "failed", err.Error(), 0)
		}
		m.Avatars = pos
	}
	for i, p := range m.Avatars {
		m.Sky.DrawSprite(m.Sprites.Avatar, p)
		m.Log.Add(m.RoundNumber, 0, playerLabel(i), "placement", "avatar", p.String(), p.Y)
	}

	cur := m.Round.CurrentPlayer()
	m.Log.Add(m.RoundNumber, 0, playerLabel(cur), "round", "start",
		fmt.Sprintf("starting player %d", cur+1), float64(cur))
	m.Msgs.Add(m.RoundNumber, cur, fmt.Sprintf("Round %d: player %d's turn", m.RoundNumber, cur+1))
}

// CurrentPlayer is the player whose turn it is.
func (m *Match) CurrentPlayer() int { return m.Round.CurrentPlayer() }

// AvatarBox returns the bounding box of a player's avatar.
func (m *Match) AvatarBox(player int) Box {
	return boxAt(m.Avatars[player], m.Cfg.AvatarWidth, m.Cfg.AvatarHeight)
}

// DragStart begins aiming if p is on the current player's avatar. It reports
// whether the gesture was accepted.
func (m *Match) DragStart(p Point) bool {
	if m.Phase != PhaseAiming || !PointInBox(p, m.AvatarBox(m.CurrentPlayer())) {
		return false
	}
	m.Aim = Aim{Active: true, Start: p, Current: p}
	return true
}

// DragMove tracks the cursor while aiming.
func (m *Match) DragMove(p Point) {
	if m.Aim.Active {
		m.Aim.Current = p
	}
}

// DragEnd releases the throw. Releasing back on the thrower's own avatar
// cancels it. It reports whether a throw started.
func (m *Match) DragEnd(p Point) bool {
	if !m.Aim.Active {
		return false
	}
	start := m.Aim.Start
	m.Aim = Aim{}
	cur := m.CurrentPlayer()
	if PointInBox(p, m.AvatarBox(cur)) {
		m.Log.Add(m.RoundNumber, m.Round.TurnNumber, playerLabel(cur), "throw", "cancelled", p.String(), 0)
		return false
	}
	return m.Throw(LaunchVelocity(start, p, m.Cfg.VelocityScale))
}

// Throw launches the current player's projectile with velocity v from a fixed
// point above their avatar.
func (m *Match) Throw(v Vec) bool {
	if m.Phase != PhaseAiming {
		return false
	}
	cur := m.CurrentPlayer()
	launch := m.Avatars[cur]
	launch.Y -= m.Cfg.LaunchOffsetY
	m.throw = &Throw{Thrower: cur, Launch: launch, Velocity: v}
	m.elapsed = 0
	m.last = StepResult{Position: launch}
	m.Phase = PhaseInFlight
	m.Log.Add(m.RoundNumber, m.Round.TurnNumber, playerLabel(cur), "throw", "launch",
		fmt.Sprintf("v=(%.1f,%.1f) from %s", v.X, v.Y, launch), 0)
	return true
}

// InFlight returns the throw being simulated, if any.
func (m *Match) InFlight() (Throw, bool) {
	if m.throw == nil {
		return Throw{}, false
	}
	return *m.throw, true
}

// Projectile returns the latest simulated step while a throw is in flight.
func (m *Match) Projectile() (StepResult, bool) {
	if m.throw == nil {
		return StepResult{}, false
	}
	return m.last, true
}

// Advance moves the throw in flight forward by dtMs and applies its outcome
// to the round. Without a throw it returns a zero result.
func (m *Match) Advance(dtMs float64) StepResult {
	if m.throw == nil {
		return StepResult{}
	}
	t := *m.throw
	m.elapsed += dtMs
	target := m.AvatarBox(1 - t.Thrower)
	res := t.Advance(m.Cfg, m.Sky, target, m.elapsed)
	m.last = res

	label := playerLabel(t.Thrower)
	if !res.Outcome.Done() {
		m.Log.AddVerbose(m.RoundNumber, m.Round.TurnNumber, label, "throw", "position", res.Position.String(), m.elapsed)
		return res
	}

	m.throw = nil
	m.Log.Add(m.RoundNumber, m.Round.TurnNumber, label, "throw", "outcome",
		fmt.Sprintf("%s at %s", res.Outcome, res.Position), m.elapsed)

	switch res.Outcome {
	case OutcomeHit:
		m.Phase = PhaseRoundOver
		m.Winner = t.Thrower
		m.Scores[t.Thrower]++
		m.Log.Add(m.RoundNumber, m.Round.TurnNumber, label, "round", "won",
			fmt.Sprintf("score %d-%d", m.Scores[0], m.Scores[1]), float64(m.Scores[t.Thrower]))
		m.Msgs.Add(m.RoundNumber, t.Thrower, fmt.Sprintf("Player %d wins this round!", t.Thrower+1))
	case OutcomeExplosion:
		m.Sky.DrawSprite(m.Sprites.Explosion, res.Position)
		m.nextTurn(res.Outcome)
	default:
		m.nextTurn(res.Outcome)
	}
	return res
}

func (m *Match) nextTurn(o Outcome) {
	m.Round = m.Round.NextTurn()
	m.Phase = PhaseAiming
	cur := m.CurrentPlayer()
	m.Log.Add(m.RoundNumber, m.Round.TurnNumber, playerLabel(cur), "turn", "next", o.String(), float64(cur))
	m.Msgs.Add(m.RoundNumber, cur, fmt.Sprintf("%s. Player %d's turn", outcomeMessage(o), cur+1))
}

// Cancel abandons the throw in flight and any aim gesture without passing the
// turn. Nothing from the abandoned throw can reach the match afterwards.
func (m *Match) Cancel() {
	if m.throw != nil {
		m.Log.Add(m.RoundNumber, m.Round.TurnNumber, playerLabel(m.throw.Thrower), "throw", "cancelled", "reset", m.elapsed)
		m.throw = nil
	}
	m.elapsed = 0
	m.last = StepResult{}
	m.Aim = Aim{}
	if m.Phase == PhaseInFlight {
		m.Phase = PhaseAiming
	}
}

func outcomeMessage(o Outcome) string {
	switch o {
	case OutcomeOutOfBounds:
		return "Out of bounds"
	case OutcomeExplosion:
		return "Boom"
	case OutcomeTimeout:
		return "Lost in the clouds"
	default:
		return o.String()
	}
}
