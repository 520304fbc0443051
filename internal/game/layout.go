package game

import (
	"fmt"
	"math/rand"
)

// noPrevious seeds the "previous building" size before the first draw. Drawn
// sizes are always positive, so it never matches and the first draw is
// accepted as is.
const noPrevious = -1

// Window tiling, in pixels.
const (
	windowInset  = 8
	windowStepX  = 18
	windowStepY  = 28
	windowWidth  = 7
	windowHeight = 12
	windowMargin = 2
)

// Building is one block of the skyline. X, Width and Height are pixels;
// GridX is the left edge in grid units.
type Building struct {
	GridX  int
	X      int
	Width  int
	Height int
}

// Midpoint is the horizontal centre of the building in pixels.
func (b Building) Midpoint() float64 {
	return float64(b.X) + float64(b.Width)/2
}

// Right is the pixel x one past the building's right edge.
func (b Building) Right() int { return b.X + b.Width }

// LayoutGenerator produces random skylines for a validated config.
type LayoutGenerator struct {
	cfg Config
}

// NewLayoutGenerator checks the building ranges up front; ranges the
// rejection sampler can never satisfy return ErrDegenerateLayout.
func NewLayoutGenerator(cfg Config) (*LayoutGenerator, error) {
	if err := cfg.validateLayout(); err != nil {
		return nil, err
	}
	if cfg.GridSize <= 0 {
		return nil, fmt.Errorf("%w: grid size %d", ErrInvalidConfig, cfg.GridSize)
	}
	return &LayoutGenerator{cfg: cfg}, nil
}

// Generate lays buildings left to right until the map width is covered.
// Neighbours never share a width or a height; the last building is clipped so
// the skyline ends exactly at the map edge.
func (lg *LayoutGenerator) Generate(rng *rand.Rand) []Building {
	cfg := lg.cfg
	var buildings []Building
	lastWidth, lastHeight := noPrevious, noPrevious
	for xPos := 0; xPos < cfg.MapWidth; {
		width, height := lastWidth, lastHeight
		for width == lastWidth || height == lastHeight {
			width = randomIntBetween(rng, cfg.BuildingMinWidth, cfg.BuildingMaxWidth)
			height = randomIntBetween(rng, cfg.BuildingMinHeight, cfg.BuildingMaxHeight)
		}
		if xPos+width > cfg.MapWidth {
			width = cfg.MapWidth - xPos
		}
		buildings = append(buildings, Building{
			GridX:  xPos,
			X:      cfg.ToPixels(xPos),
			Width:  cfg.ToPixels(width),
			Height: cfg.ToPixels(height),
		})
		xPos += width
		lastWidth, lastHeight = width, height
	}
	return buildings
}

// RenderBuilding paints b and its windows onto c. The building stops
// BorderSize pixels short of its right edge, leaving a sky gap to the
// neighbour.
func RenderBuilding(c Canvas, cfg Config, b Building, rng *rand.Rand) {
	mapH := cfg.PixelHeight()
	top := mapH - b.Height
	c.FillRect(Box{
		X: float64(b.X),
		Y: float64(top),
		W: float64(b.Width - cfg.BorderSize),
		H: float64(mapH),
	}, randomBuildingColor(rng))
	drawWindows(c, b.X, top, b.Right()-cfg.BorderSize, mapH, rng)
}

func drawWindows(c Canvas, left, top, xlim, ylim int, rng *rand.Rand) {
	for x := left + windowInset; x < xlim; x += windowStepX {
		for y := top + windowInset; y < ylim; y += windowStepY {
			if x+windowWidth < xlim-windowMargin && y+windowHeight < ylim-windowMargin {
				c.FillRect(Box{X: float64(x), Y: float64(y), W: windowWidth, H: windowHeight}, randomWindowColor(rng))
			}
		}
	}
}

// randomIntBetween draws uniformly from [lo, hi], both ends included.
func randomIntBetween(rng *rand.Rand, lo, hi int) int {
	return rng.Intn(hi-lo+1) + lo
}
