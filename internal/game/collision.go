package game

import "image/color"

// IsBackground reports whether c is exactly the sky colour. Buildings,
// windows, avatars, explosions and off-raster samples all differ.
func IsBackground(c color.RGBA) bool {
	return c.R == SkyColor.R && c.G == SkyColor.G && c.B == SkyColor.B && c.A == SkyColor.A
}

// PointInBox is inclusive on every edge: a point exactly on the far corner
// (X+W, Y+H) is inside.
func PointInBox(p Point, box Box) bool {
	return box.Contains(p)
}

// HasEdgeCollision samples only the four corners of rect. A solid pixel
// strictly inside the rectangle with sky at every corner is missed.
func HasEdgeCollision(s Sampler, rect Box) bool {
	for _, c := range rect.Corners() {
		if !IsBackground(s.SampleColor(c)) {
			return true
		}
	}
	return false
}

// HasAvatarCollision reports whether any corner of rect lies inside the
// avatar's box.
func HasAvatarCollision(rect, avatar Box) bool {
	for _, c := range rect.Corners() {
		if PointInBox(c, avatar) {
			return true
		}
	}
	return false
}
