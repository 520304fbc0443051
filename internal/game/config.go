package game

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrInvalidConfig reports a tunable that cannot drive a match.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrDegenerateLayout reports building ranges the layout generator cannot satisfy.
	ErrDegenerateLayout = errors.New("degenerate layout")
)

// Placement policy names accepted by Config.Placement.
const (
	PlacementBuilding = "building"
	PlacementColumn   = "column"
)

// Config holds every tunable of a match. Lengths are pixels unless the field
// name says grid units.
type Config struct {
	MapWidth  int // grid units
	MapHeight int // grid units
	GridSize  int // pixels per grid unit

	BorderSize int // sky gap at the right edge of each building

	BuildingMinWidth  int // grid units
	BuildingMaxWidth  int // grid units
	BuildingMinHeight int // grid units
	BuildingMaxHeight int // grid units

	Gravity        float64
	TimeScale      float64 // elapsed ms per unit of trajectory time
	VelocityScale  float64 // drag distance → launch velocity
	ThrowTimeoutMs float64
	SpriteFrames   int

	AvatarWidth      int
	AvatarHeight     int
	ProjectileWidth  int
	ProjectileHeight int
	ProjectileInset  float64 // shrink of the edge-collision rect
	AvatarHitPad     float64 // growth of the avatar-collision rect
	LaunchOffsetY    float64 // launch point height above the avatar's top-left

	EdgeBandGrid int    // column-probe search band at each map edge, grid units
	Placement    string // PlacementBuilding or PlacementColumn
}

// DefaultConfig returns the tunables of the classic prototype.
func DefaultConfig() Config {
	return Config{
		MapWidth:          80,
		MapHeight:         40,
		GridSize:          10,
		BorderSize:        2,
		BuildingMinWidth:  6,
		BuildingMaxWidth:  10,
		BuildingMinHeight: 6,
		BuildingMaxHeight: 28,
		Gravity:           40,
		TimeScale:         300,
		VelocityScale:     1.5,
		ThrowTimeoutMs:    5000,
		SpriteFrames:      4,
		AvatarWidth:       28,
		AvatarHeight:      30,
		ProjectileWidth:   14,
		ProjectileHeight:  14,
		ProjectileInset:   5,
		AvatarHitPad:      2,
		LaunchOffsetY:     50,
		EdgeBandGrid:      10,
		Placement:         PlacementBuilding,
	}
}

// PixelWidth is the map width in pixels.
func (c Config) PixelWidth() int { return c.MapWidth * c.GridSize }

// PixelHeight is the map height in pixels.
func (c Config) PixelHeight() int { return c.MapHeight * c.GridSize }

// ToPixels converts grid units to pixels.
func (c Config) ToPixels(grid int) int { return grid * c.GridSize }

// Validate checks every tunable. Building range problems wrap
// ErrDegenerateLayout, everything else wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.validateLayout(); err != nil {
		return err
	}
	switch {
	case c.MapHeight <= 0:
		return fmt.Errorf("%w: map height %d", ErrInvalidConfig, c.MapHeight)
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, c.GridSize)
	case c.BorderSize < 0 || c.BorderSize >= c.GridSize:
		return fmt.Errorf("%w: border size %d with grid size %d", ErrInvalidConfig, c.BorderSize, c.GridSize)
	case c.TimeScale <= 0:
		return fmt.Errorf("%w: time scale %g", ErrInvalidConfig, c.TimeScale)
	case c.ThrowTimeoutMs <= 0:
		return fmt.Errorf("%w: throw timeout %gms", ErrInvalidConfig, c.ThrowTimeoutMs)
	case c.SpriteFrames <= 0:
		return fmt.Errorf("%w: sprite frames %d", ErrInvalidConfig, c.SpriteFrames)
	case c.AvatarWidth <= 0 || c.AvatarHeight <= 0:
		return fmt.Errorf("%w: avatar size %dx%d", ErrInvalidConfig, c.AvatarWidth, c.AvatarHeight)
	case c.ProjectileWidth <= 0 || c.ProjectileHeight <= 0:
		return fmt.Errorf("%w: projectile size %dx%d", ErrInvalidConfig, c.ProjectileWidth, c.ProjectileHeight)
	case c.ToPixels(c.BuildingMaxHeight)+c.AvatarHeight > c.PixelHeight():
		// An avatar on the tallest roof must still be on the map.
		return fmt.Errorf("%w: building height %d leaves no room for a %dpx avatar under map height %d",
			ErrInvalidConfig, c.BuildingMaxHeight, c.AvatarHeight, c.MapHeight)
	case c.EdgeBandGrid <= 0:
		return fmt.Errorf("%w: edge band %d", ErrInvalidConfig, c.EdgeBandGrid)
	case 2*c.ToPixels(c.EdgeBandGrid) > c.PixelWidth():
		return fmt.Errorf("%w: edge band %d overlaps itself on a map %d wide", ErrInvalidConfig, c.EdgeBandGrid, c.MapWidth)
	}
	if c.Placement != PlacementBuilding && c.Placement != PlacementColumn {
		return fmt.Errorf("%w: unknown placement %q (supported: %s, %s)",
			ErrInvalidConfig, c.Placement, PlacementBuilding, PlacementColumn)
	}
	return nil
}

// validateLayout rejects building ranges that would make the rejection
// sampler loop forever.
func (c Config) validateLayout() error {
	switch {
	case c.MapWidth <= 0:
		return fmt.Errorf("%w: map width %d", ErrDegenerateLayout, c.MapWidth)
	case c.BuildingMinWidth <= 0 || c.BuildingMinHeight <= 0:
		return fmt.Errorf("%w: minimum building size %dx%d must be positive",
			ErrDegenerateLayout, c.BuildingMinWidth, c.BuildingMinHeight)
	case c.BuildingMinWidth > c.BuildingMaxWidth:
		return fmt.Errorf("%w: min width %d > max width %d", ErrDegenerateLayout, c.BuildingMinWidth, c.BuildingMaxWidth)
	case c.BuildingMinHeight > c.BuildingMaxHeight:
		return fmt.Errorf("%w: min height %d > max height %d", ErrDegenerateLayout, c.BuildingMinHeight, c.BuildingMaxHeight)
	case c.BuildingMinWidth == c.BuildingMaxWidth:
		// Neighbours must differ in width, a single value can never do that.
		return fmt.Errorf("%w: width range [%d,%d] has one value", ErrDegenerateLayout, c.BuildingMinWidth, c.BuildingMaxWidth)
	case c.BuildingMinHeight == c.BuildingMaxHeight:
		return fmt.Errorf("%w: height range [%d,%d] has one value", ErrDegenerateLayout, c.BuildingMinHeight, c.BuildingMaxHeight)
	}
	return nil
}

// BindFlags registers every tunable on fs, using the current values as defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.MapWidth, "map-width", c.MapWidth, "map width in grid units")
	fs.IntVar(&c.MapHeight, "map-height", c.MapHeight, "map height in grid units")
	fs.IntVar(&c.GridSize, "grid-size", c.GridSize, "pixels per grid unit")
	fs.IntVar(&c.BorderSize, "border-size", c.BorderSize, "sky gap at the right edge of each building in pixels")
	fs.IntVar(&c.BuildingMinWidth, "min-width", c.BuildingMinWidth, "minimum building width in grid units")
	fs.IntVar(&c.BuildingMaxWidth, "max-width", c.BuildingMaxWidth, "maximum building width in grid units")
	fs.IntVar(&c.BuildingMinHeight, "min-height", c.BuildingMinHeight, "minimum building height in grid units")
	fs.IntVar(&c.BuildingMaxHeight, "max-height", c.BuildingMaxHeight, "maximum building height in grid units")
	fs.Float64Var(&c.Gravity, "gravity", c.Gravity, "quadratic drift applied per unit of trajectory time squared")
	fs.Float64Var(&c.TimeScale, "time-scale", c.TimeScale, "elapsed milliseconds per unit of trajectory time")
	fs.Float64Var(&c.VelocityScale, "velocity-scale", c.VelocityScale, "drag distance to launch velocity multiplier")
	fs.Float64Var(&c.ThrowTimeoutMs, "throw-timeout", c.ThrowTimeoutMs, "throw timeout in milliseconds")
	fs.IntVar(&c.SpriteFrames, "sprite-frames", c.SpriteFrames, "projectile animation frame count")
	fs.IntVar(&c.AvatarWidth, "avatar-width", c.AvatarWidth, "avatar sprite width in pixels")
	fs.IntVar(&c.AvatarHeight, "avatar-height", c.AvatarHeight, "avatar sprite height in pixels")
	fs.IntVar(&c.ProjectileWidth, "projectile-width", c.ProjectileWidth, "projectile sprite width in pixels")
	fs.IntVar(&c.ProjectileHeight, "projectile-height", c.ProjectileHeight, "projectile sprite height in pixels")
	fs.Float64Var(&c.ProjectileInset, "projectile-inset", c.ProjectileInset, "edge-collision rectangle inset in pixels")
	fs.Float64Var(&c.AvatarHitPad, "avatar-hit-pad", c.AvatarHitPad, "avatar-collision rectangle padding in pixels")
	fs.Float64Var(&c.LaunchOffsetY, "launch-offset", c.LaunchOffsetY, "launch point height above the avatar in pixels")
	fs.IntVar(&c.EdgeBandGrid, "edge-band", c.EdgeBandGrid, "column placement search band at each edge in grid units")
	fs.StringVar(&c.Placement, "placement", c.Placement, "avatar placement policy: building or column")
}
