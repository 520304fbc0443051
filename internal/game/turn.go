package game

import "math/rand"

// Phase is where the match is in its turn cycle.
type Phase int

const (
	PhaseAiming    Phase = iota // waiting for the current player to throw
	PhaseInFlight               // a throw is being simulated
	PhaseRoundOver              // someone was hit; waiting for NextRound
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseInFlight:
		return "in_flight"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// RoundState tracks whose turn it is. The current player is derived, never
// stored: (TurnNumber + StartingPlayer) mod 2.
type RoundState struct {
	StartingPlayer int
	TurnNumber     int
}

// CurrentPlayer returns 0 or 1.
func (r RoundState) CurrentPlayer() int {
	return (r.TurnNumber + r.StartingPlayer) % 2
}

// Opponent returns the player who is not currently throwing.
func (r RoundState) Opponent() int {
	return 1 - r.CurrentPlayer()
}

// NextTurn hands the throw to the other player.
func (r RoundState) NextTurn() RoundState {
	r.TurnNumber++
	return r
}

// NextRound resets the turn counter and picks a uniformly random starter.
func (r RoundState) NextRound(rng *rand.Rand) RoundState {
	return RoundState{StartingPlayer: rng.Intn(2)}
}
