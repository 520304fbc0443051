package game

import (
	"fmt"
	"math/rand"
)

// DefaultFrameMs is one frame at 60 TPS.
const DefaultFrameMs = 1000.0 / 60.0

// TestSim is a headless match driver used by tests and the headless report.
// It mirrors Game.Update but has no Ebiten dependency and supports
// deterministic seeding, hand-built layouts and structured logging.
type TestSim struct {
	Cfg     Config
	Match   *Match
	SimLog  *SimLog
	FrameMs float64
	Frames  int // frames advanced so far

	rng      *rand.Rand
	layout   []Building
	avatars  *[2]Point
	starting int
	override bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // config, seed, verbose: applied before the match exists
	simOptRound                      // layout, avatars, starter: applied to the first round
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithMapSize sets the map dimensions in grid units.
func WithMapSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Cfg.MapWidth = w
		ts.Cfg.MapHeight = h
	}}
}

// WithConfig lets a test adjust any tunable.
func WithConfig(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.Cfg)
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithVerbose enables per-frame projectile logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithFrameMs sets the simulated frame length.
func WithFrameMs(ms float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.FrameMs = ms
	}}
}

// WithBuilding appends a building given in grid units to a hand-built layout.
// Buildings must be added left to right.
func WithBuilding(gridX, gridW, gridH int) SimOption {
	return SimOption{simOptRound, func(ts *TestSim) {
		g := ts.Cfg.GridSize
		ts.layout = append(ts.layout, Building{GridX: gridX, X: gridX * g, Width: gridW * g, Height: gridH * g})
		ts.override = true
	}}
}

// WithAvatars fixes both avatar positions instead of asking the placement policy.
func WithAvatars(p0, p1 Point) SimOption {
	return SimOption{simOptRound, func(ts *TestSim) {
		ts.avatars = &[2]Point{p0, p1}
		ts.override = true
	}}
}

// WithStartingPlayer fixes who throws first.
func WithStartingPlayer(player int) SimOption {
	return SimOption{simOptRound, func(ts *TestSim) {
		ts.starting = player
		ts.override = true
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (config, seed, verbose) and the match itself
//  2. Round overrides (layout, avatars, starting player), which replace the
//     randomly generated first round
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{
		Cfg:     DefaultConfig(),
		SimLog:  NewSimLog(false),
		FrameMs: DefaultFrameMs,
		rng:     rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	m, err := NewMatch(ts.Cfg, ts.rng)
	if err != nil {
		return nil, fmt.Errorf("new test sim: %w", err)
	}
	ts.SimLog.entries = append(ts.SimLog.entries, m.Log.entries...)
	m.Log = ts.SimLog
	ts.Match = m
	for _, o := range opts {
		if o.kind == simOptRound {
			o.fn(ts)
		}
	}
	if ts.override {
		layout := ts.layout
		if layout == nil {
			layout = m.Buildings
		}
		m.RoundNumber = 0
		ts.SimLog.entries = nil
		m.startRound(RoundState{StartingPlayer: ts.starting}, layout, ts.avatars)
	}
	return ts, nil
}

// ThrowRecord summarises one resolved throw.
type ThrowRecord struct {
	Round     int
	Thrower   int
	Velocity  Vec
	Outcome   Outcome
	Position  Point // where the throw ended
	ElapsedMs float64
	Frames    int
}

// RunThrow launches the current player's projectile with velocity v and
// advances frames until it resolves. ok is false if no throw could start.
func (ts *TestSim) RunThrow(v Vec) (ThrowRecord, bool) {
	m := ts.Match
	if !m.Throw(v) {
		return ThrowRecord{}, false
	}
	return ts.runFlight(), true
}

// RunDrag performs a full drag gesture and, if it launches a throw, runs it.
func (ts *TestSim) RunDrag(start, end Point) (ThrowRecord, bool) {
	m := ts.Match
	if !m.DragStart(start) {
		return ThrowRecord{}, false
	}
	m.DragMove(end)
	if !m.DragEnd(end) {
		return ThrowRecord{}, false
	}
	return ts.runFlight(), true
}

func (ts *TestSim) runFlight() ThrowRecord {
	m := ts.Match
	t, _ := m.InFlight()
	rec := ThrowRecord{Round: m.RoundNumber, Thrower: t.Thrower, Velocity: t.Velocity}
	for {
		res := m.Advance(ts.FrameMs)
		ts.Frames++
		rec.Frames++
		rec.ElapsedMs += ts.FrameMs
		if res.Outcome.Done() {
			rec.Outcome = res.Outcome
			rec.Position = res.Position
			return rec
		}
	}
}
