package game

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Sprite is an RGBA bitmap whose pixels are either fully opaque or fully
// transparent. Transparent pixels leave the destination untouched.
type Sprite struct {
	Img *image.RGBA
}

// Size returns the sprite's width and height in pixels.
func (s *Sprite) Size() (int, int) {
	b := s.Img.Bounds()
	return b.Dx(), b.Dy()
}

// SpriteSet holds the bitmaps a match draws.
type SpriteSet struct {
	Avatar     *Sprite
	Projectile []*Sprite // animation frames
	Explosion  *Sprite
	Sun        *Sprite
}

var spriteInk = map[byte]color.RGBA{
	'F': avatarFur,
	'f': avatarFace,
	'B': projectileSkin,
	't': projectileTip,
	'H': explosionHot,
	'C': explosionCore,
	'S': sunColor,
}

var avatarMask = []string{
	"....FFFFFF....",
	"...FFFFFFFF...",
	"...FFffffFF...",
	"...FfFffFfF...",
	"...FFffffFF...",
	"....FFFFFF....",
	"..FFFFFFFFFF..",
	".FFFFFFFFFFFF.",
	"FFF.FFFFFF.FFF",
	"FF..FFFFFF..FF",
	"FF..FFFFFF..FF",
	"ff..FFFFFF..ff",
	"....FF..FF....",
	"...FFF..FFF...",
	"..FFFF..FFFF..",
}

var projectileMask = []string{
	".......",
	"t......",
	".BB....",
	".BBB...",
	"..BBBBt",
	"...BBB.",
	".......",
}

var explosionMask = []string{
	"....H....",
	".H.HHH.H.",
	"..HHCHH..",
	".HHCCCHH.",
	"HHCCCCCHH",
	".HHCCCHH.",
	"..HHCHH..",
	".H.HHH.H.",
	"....H....",
}

var sunMask = []string{
	"S...S...S",
	".S.SSS.S.",
	"..SSSSS..",
	".SSSSSSS.",
	"SSSSSSSSS",
	".SSSSSSS.",
	"..SSSSS..",
	".S.SSS.S.",
	"S...S...S",
}

// NewSpriteSet rasterizes the built-in masks at the sizes cfg asks for.
func NewSpriteSet(cfg Config) *SpriteSet {
	frames := make([]*Sprite, cfg.SpriteFrames)
	base := projectileMask
	for i := range frames {
		frames[i] = maskSprite(base, cfg.ProjectileWidth, cfg.ProjectileHeight)
		base = rotateMask(base)
	}
	return &SpriteSet{
		Avatar:     maskSprite(avatarMask, cfg.AvatarWidth, cfg.AvatarHeight),
		Projectile: frames,
		Explosion:  maskSprite(explosionMask, 2*cfg.ProjectileWidth, 2*cfg.ProjectileHeight),
		Sun:        maskSprite(sunMask, 36, 36),
	}
}

// maskSprite paints mask at one pixel per character and scales it to w×h.
func maskSprite(mask []string, w, h int) *Sprite {
	src := image.NewRGBA(image.Rect(0, 0, len(mask[0]), len(mask)))
	for y, row := range mask {
		for x := 0; x < len(row); x++ {
			if c, ok := spriteInk[row[x]]; ok {
				src.SetRGBA(x, y, c)
			}
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return &Sprite{Img: dst}
}

// rotateMask turns a square mask a quarter turn clockwise.
func rotateMask(mask []string) []string {
	n := len(mask)
	out := make([]string, n)
	for y := 0; y < n; y++ {
		row := make([]byte, n)
		for x := 0; x < n; x++ {
			row[x] = mask[n-1-x][y]
		}
		out[y] = string(row)
	}
	return out
}
