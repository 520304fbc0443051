package game

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Skyline is the in-memory raster the buildings, avatars and explosions are
// painted onto. Besides the pixels it keeps, per column, the y of the topmost
// solid pixel so placement never has to scan.
type Skyline struct {
	Width  int
	Height int

	img     *image.RGBA
	top     []int // topmost non-sky y per column; Height when the column is empty
	version int   // bumped on every mutation
}

// NewSkyline creates a w×h raster filled with sky.
func NewSkyline(w, h int) *Skyline {
	s := &Skyline{
		Width:  w,
		Height: h,
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		top:    make([]int, w),
	}
	s.Reset()
	return s
}

// Reset paints the whole raster sky.
func (s *Skyline) Reset() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(SkyColor), image.Point{}, draw.Src)
	for x := range s.top {
		s.top[x] = s.Height
	}
	s.version++
}

// Image exposes the raster for front ends. Callers must not modify it.
func (s *Skyline) Image() *image.RGBA { return s.img }

// Version changes whenever the raster does, so front ends can skip re-uploads.
func (s *Skyline) Version() int { return s.version }

// InBounds reports whether pixel (x, y) is on the raster.
func (s *Skyline) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// SampleColor returns the pixel containing p. Off-raster samples read as
// transparent black, which is not sky.
func (s *Skyline) SampleColor(p Point) color.RGBA {
	px := p.Pixel()
	if !s.InBounds(px.X, px.Y) {
		return color.RGBA{}
	}
	return s.img.RGBAAt(px.X, px.Y)
}

// FillRect paints b with c, clipped to the raster.
func (s *Skyline) FillRect(b Box, c color.RGBA) {
	r := b.Rect().Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	s.refreshColumns(r.Min.X, r.Max.X)
}

// ClearRegion paints b back to sky.
func (s *Skyline) ClearRegion(b Box) {
	s.FillRect(b, SkyColor)
}

// DrawSprite composites sp with its top-left at at. Transparent sprite pixels
// keep whatever was underneath.
func (s *Skyline) DrawSprite(sp *Sprite, at Point) {
	origin := at.Pixel()
	r := sp.Img.Bounds().Add(origin)
	clipped := r.Intersect(s.img.Bounds())
	if clipped.Empty() {
		return
	}
	draw.Draw(s.img, r, sp.Img, image.Point{}, draw.Over)
	s.refreshColumns(clipped.Min.X, clipped.Max.X)
}

// FirstSolidY returns the topmost non-sky y in column x, scanning from the top
// of the map. ok is false when the column is sky all the way down or x is off
// the raster.
func (s *Skyline) FirstSolidY(x int) (y int, ok bool) {
	if x < 0 || x >= s.Width {
		return s.Height, false
	}
	y = s.top[x]
	return y, y < s.Height
}

// SkyFraction returns the fraction of pixels that are sky.
func (s *Skyline) SkyFraction() float64 {
	sky := 0
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if IsBackground(s.img.RGBAAt(x, y)) {
				sky++
			}
		}
	}
	return float64(sky) / float64(s.Width*s.Height)
}

func (s *Skyline) refreshColumns(x0, x1 int) {
	for x := x0; x < x1; x++ {
		s.top[x] = s.Height
		for y := 0; y < s.Height; y++ {
			if !IsBackground(s.img.RGBAAt(x, y)) {
				s.top[x] = y
				break
			}
		}
	}
	s.version++
}
