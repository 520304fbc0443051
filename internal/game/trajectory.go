package game

import "math"

// Outcome is how a single simulation step left the throw.
type Outcome int

const (
	OutcomeContinue    Outcome = iota // still flying
	OutcomeOutOfBounds                // left the map sideways
	OutcomeExplosion                  // hit a building or anything that is not the target
	OutcomeHit                        // hit the opposing avatar
	OutcomeTimeout                    // flew for the whole throw budget
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeExplosion:
		return "explosion"
	case OutcomeHit:
		return "hit"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Done reports whether the throw has resolved.
func (o Outcome) Done() bool { return o != OutcomeContinue }

// LaunchVelocity converts a drag gesture into a launch velocity.
func LaunchVelocity(dragStart, dragEnd Point, scale float64) Vec {
	return dragEnd.Sub(dragStart).Scale(scale)
}

// Throw is one projectile flight. It is immutable; the position at any moment
// is a pure function of the elapsed time.
type Throw struct {
	Thrower  int
	Launch   Point
	Velocity Vec
}

// StepResult is what a single frame of a throw produced.
type StepResult struct {
	Position  Point
	DeltaTime float64 // elapsed time in trajectory units
	Frame     int     // projectile animation frame, valid while continuing
	Outcome   Outcome
}

// Position evaluates the trajectory elapsedMs after release. Gravity enters
// as a plain quadratic term in trajectory time, not as an integrated
// acceleration.
func (t Throw) Position(cfg Config, elapsedMs float64) Point {
	dt := elapsedMs / cfg.TimeScale
	return Point{
		X: t.Launch.X + t.Velocity.X*dt,
		Y: t.Launch.Y + t.Velocity.Y*dt + cfg.Gravity*dt*dt,
	}
}

// Advance evaluates one frame of the throw against the skyline and the
// opposing avatar's box. Checks run in order: sideways exit, collision (only
// below the top of the map), timeout.
func (t Throw) Advance(cfg Config, sky Sampler, target Box, elapsedMs float64) StepResult {
	pos := t.Position(cfg, elapsedMs)
	res := StepResult{Position: pos, DeltaTime: elapsedMs / cfg.TimeScale}

	if pos.X < 0 || pos.X > float64(cfg.PixelWidth()) {
		res.Outcome = OutcomeOutOfBounds
		return res
	}

	if pos.Y > 0 && HasEdgeCollision(sky, edgeRect(cfg, pos)) {
		if HasAvatarCollision(avatarRect(cfg, pos), target) {
			res.Outcome = OutcomeHit
		} else {
			res.Outcome = OutcomeExplosion
		}
		return res
	}

	if elapsedMs >= cfg.ThrowTimeoutMs {
		res.Outcome = OutcomeTimeout
		return res
	}

	res.Frame = int(math.Floor(res.DeltaTime)) % cfg.SpriteFrames
	if res.Frame < 0 {
		res.Frame += cfg.SpriteFrames
	}
	return res
}

// edgeRect is the projectile box shrunk on its near edges, used for the
// skyline test.
func edgeRect(cfg Config, pos Point) Box {
	in := cfg.ProjectileInset
	return Box{
		X: pos.X + in,
		Y: pos.Y + in,
		W: float64(cfg.ProjectileWidth) - in,
		H: float64(cfg.ProjectileHeight) - in,
	}
}

// avatarRect is the projectile box grown on its near edges, used for the
// avatar test.
func avatarRect(cfg Config, pos Point) Box {
	pad := cfg.AvatarHitPad
	return Box{
		X: pos.X - pad,
		Y: pos.Y - pad,
		W: float64(cfg.ProjectileWidth) + pad,
		H: float64(cfg.ProjectileHeight) + pad,
	}
}
