package game

import "image/color"

// Sampler reads back one pixel of a rendered surface.
type Sampler interface {
	SampleColor(p Point) color.RGBA
}

// Canvas is the drawing surface the core renders the skyline onto and
// queries for collisions.
type Canvas interface {
	Sampler
	FillRect(b Box, c color.RGBA)
	DrawSprite(s *Sprite, at Point)
	ClearRegion(b Box)
}
