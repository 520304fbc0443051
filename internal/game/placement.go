package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrPlacementFailed means a policy found nowhere to stand an avatar. It is
// recoverable: fall back to another policy or accept the degenerate position.
var ErrPlacementFailed = errors.New("avatar placement failed")

// PlacementPolicy picks the resting point of both avatars for a fresh layout.
// Positions are sprite top-left corners; index 0 is the left player.
type PlacementPolicy interface {
	Place(buildings []Building, sky *Skyline, rng *rand.Rand) ([2]Point, error)
}

// NewPlacementPolicy returns the policy named by cfg.Placement. The column
// probe falls back to building indices when it fails.
func NewPlacementPolicy(cfg Config) (PlacementPolicy, error) {
	switch cfg.Placement {
	case PlacementBuilding:
		return BuildingIndex{Cfg: cfg}, nil
	case PlacementColumn:
		return Fallback{Primary: ColumnProbe{Cfg: cfg}, Secondary: BuildingIndex{Cfg: cfg}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown placement %q", ErrInvalidConfig, cfg.Placement)
	}
}

// BuildingIndex stands each avatar on the middle of a building near its edge
// of the map, using the building height directly. The very first and last
// buildings are skipped because clipping can leave them tiny.
type BuildingIndex struct {
	Cfg Config
}

func (p BuildingIndex) Place(buildings []Building, _ *Skyline, rng *rand.Rand) ([2]Point, error) {
	n := len(buildings)
	if n < 2 {
		return bottomCorners(p.Cfg), fmt.Errorf("%w: %d building(s), need at least 2", ErrPlacementFailed, n)
	}
	half := n / 2
	left := randomIntBetween(rng, clampInt(1, 0, half-1), clampInt(3, 0, half-1))
	right := randomIntBetween(rng, clampInt(n-4, half, n-1), clampInt(n-2, half, n-1))
	return [2]Point{
		p.standOn(buildings[left]),
		p.standOn(buildings[right]),
	}, nil
}

func (p BuildingIndex) standOn(b Building) Point {
	return Point{
		X: b.Midpoint() - float64(p.Cfg.AvatarWidth)/2,
		Y: float64(p.Cfg.PixelHeight() - b.Height - p.Cfg.AvatarHeight),
	}
}

// ColumnProbe picks a random column within EdgeBandGrid grid units of each map
// edge and stands the avatar on the first solid pixel found scanning down.
// On failure the avatar is left at the map bottom and ErrPlacementFailed is
// returned alongside the positions.
type ColumnProbe struct {
	Cfg Config
}

func (p ColumnProbe) Place(_ []Building, sky *Skyline, rng *rand.Rand) ([2]Point, error) {
	// Each band stays on its own half so the players never swap sides.
	band := clampInt(p.Cfg.ToPixels(p.Cfg.EdgeBandGrid), 1, max(sky.Width/2, 1))
	leftCol := rng.Intn(band)
	rightCol := sky.Width - 1 - rng.Intn(band)

	var out [2]Point
	var errs []error
	for i, col := range [2]int{leftCol, rightCol} {
		pt, err := p.probe(sky, col)
		out[i] = pt
		if err != nil {
			errs = append(errs, fmt.Errorf("player %d: %w", i, err))
		}
	}
	return out, errors.Join(errs...)
}

func (p ColumnProbe) probe(sky *Skyline, col int) (Point, error) {
	x := float64(clampInt(col-p.Cfg.AvatarWidth/2, 0, sky.Width-p.Cfg.AvatarWidth))
	y, ok := sky.FirstSolidY(col)
	pt := Point{X: x, Y: float64(y - p.Cfg.AvatarHeight)}
	if !ok {
		return pt, fmt.Errorf("%w: column %d is open to the map bottom", ErrPlacementFailed, col)
	}
	return pt, nil
}

// Fallback runs Primary and, if it reports ErrPlacementFailed, Secondary.
type Fallback struct {
	Primary   PlacementPolicy
	Secondary PlacementPolicy
}

func (f Fallback) Place(buildings []Building, sky *Skyline, rng *rand.Rand) ([2]Point, error) {
	pos, err := f.Primary.Place(buildings, sky, rng)
	if err == nil || !errors.Is(err, ErrPlacementFailed) || f.Secondary == nil {
		return pos, err
	}
	return f.Secondary.Place(buildings, sky, rng)
}

// bottomCorners is the degenerate placement: both avatars on the map floor
// against their own edge.
func bottomCorners(cfg Config) [2]Point {
	y := float64(cfg.PixelHeight() - cfg.AvatarHeight)
	return [2]Point{
		{X: 0, Y: y},
		{X: float64(cfg.PixelWidth() - cfg.AvatarWidth), Y: y},
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
