package game

import (
	"image/color"
	"math/rand"
)

// SkyColor is the background. Any other colour on the skyline is solid.
var SkyColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

var buildingColors = [...]color.RGBA{
	{R: 0xa1, G: 0x05, B: 0x00, A: 255}, // red
	{R: 0x14, G: 0xa0, B: 0xa3, A: 255}, // teal
	{R: 0xa2, G: 0xa0, B: 0xa2, A: 255}, // grey
}

var windowColors = [...]color.RGBA{
	{R: 0xf8, G: 0xf5, B: 0x03, A: 255}, // lit
	{R: 0x3d, G: 0x40, B: 0x3d, A: 255}, // dark
}

// Sprite palette. Each colour is opaque and differs from SkyColor.
var (
	avatarFur      = color.RGBA{R: 0xc8, G: 0x7a, B: 0x2a, A: 255}
	avatarFace     = color.RGBA{R: 0xf0, G: 0xc0, B: 0x80, A: 255}
	projectileSkin = color.RGBA{R: 0xff, G: 0xe1, B: 0x35, A: 255}
	projectileTip  = color.RGBA{R: 0x5a, G: 0x3a, B: 0x10, A: 255}
	explosionHot   = color.RGBA{R: 0xff, G: 0x40, B: 0x10, A: 255}
	explosionCore  = color.RGBA{R: 0xff, G: 0xd0, B: 0x40, A: 255}
	sunColor       = color.RGBA{R: 0xff, G: 0xee, B: 0x00, A: 255}
)

// HUD colours used by the front ends.
var (
	hudText  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudFocus = color.RGBA{R: 255, G: 255, B: 120, A: 255}
	aimLine  = color.RGBA{R: 255, G: 190, B: 220, A: 255}
)

func randomBuildingColor(rng *rand.Rand) color.RGBA {
	return buildingColors[rng.Intn(len(buildingColors))]
}

func randomWindowColor(rng *rand.Rand) color.RGBA {
	return windowColors[rng.Intn(len(windowColors))]
}
