package game

import (
	"fmt"
	"image"
	"math"
)

// Point is a position in map pixels, origin top-left, y growing downward.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Pixel truncates the point to the pixel that contains it.
func (p Point) Pixel() image.Point {
	return image.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Vec is a velocity or displacement in pixels.
type Vec struct {
	X, Y float64
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned rectangle: top-left corner plus size.
type Box struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p lies in the box. Both the near and the far edge
// count as inside.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W &&
		p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Corners returns top-left, top-right, bottom-left, bottom-right.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{X: b.X, Y: b.Y},
		{X: b.X + b.W, Y: b.Y},
		{X: b.X, Y: b.Y + b.H},
		{X: b.X + b.W, Y: b.Y + b.H},
	}
}

// Rect converts the box to the half-open pixel rectangle it covers.
func (b Box) Rect() image.Rectangle {
	x0 := int(math.Floor(b.X))
	y0 := int(math.Floor(b.Y))
	x1 := int(math.Ceil(b.X + b.W))
	y1 := int(math.Ceil(b.Y + b.H))
	return image.Rect(x0, y0, x1, y1)
}

// boxAt builds a box of integer size at p.
func boxAt(p Point, w, h int) Box {
	return Box{X: p.X, Y: p.Y, W: float64(w), H: float64(h)}
}
