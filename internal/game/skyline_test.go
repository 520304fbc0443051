package game

import (
	"image/color"
	"testing"
)

func TestSkyline_FreshIsAllSky(t *testing.T) {
	sky := NewSkyline(120, 80)
	if got := sky.SkyFraction(); got != 1 {
		t.Fatalf("fresh skyline sky fraction = %v, want 1", got)
	}
	for x := 0; x < sky.Width; x++ {
		if y, ok := sky.FirstSolidY(x); ok || y != sky.Height {
			t.Fatalf("column %d: FirstSolidY = (%d, %v), want (%d, false)", x, y, ok, sky.Height)
		}
	}
}

func TestSkyline_FillAndClear(t *testing.T) {
	sky := NewSkyline(100, 100)
	red := color.RGBA{R: 200, A: 255}
	v0 := sky.Version()
	sky.FillRect(Box{X: 10, Y: 40, W: 20, H: 60}, red)
	if sky.Version() == v0 {
		t.Fatal("FillRect should bump the version")
	}

	for _, x := range []int{10, 20, 29} {
		if y, ok := sky.FirstSolidY(x); !ok || y != 40 {
			t.Fatalf("column %d top = (%d, %v), want (40, true)", x, y, ok)
		}
	}
	if _, ok := sky.FirstSolidY(30); ok {
		t.Fatal("column 30 is past the rectangle and should be empty")
	}
	if got := sky.SampleColor(Point{X: 15.7, Y: 50.2}); got != red {
		t.Fatalf("sample inside = %v, want %v", got, red)
	}

	sky.ClearRegion(Box{X: 10, Y: 40, W: 20, H: 10})
	if y, _ := sky.FirstSolidY(15); y != 50 {
		t.Fatalf("after clearing the roof, column top = %d, want 50", y)
	}
	if !IsBackground(sky.SampleColor(Point{X: 15, Y: 45})) {
		t.Fatal("cleared pixel should be sky")
	}
}

func TestSkyline_FillClipsToRaster(t *testing.T) {
	sky := NewSkyline(50, 50)
	sky.FillRect(Box{X: -10, Y: 30, W: 20, H: 100}, color.RGBA{G: 200, A: 255})
	if y, ok := sky.FirstSolidY(0); !ok || y != 30 {
		t.Fatalf("clipped fill: column 0 top = (%d, %v)", y, ok)
	}
	sky.FillRect(Box{X: 100, Y: 0, W: 10, H: 10}, color.RGBA{G: 200, A: 255})
}

func TestSkyline_OffRasterIsSolid(t *testing.T) {
	sky := NewSkyline(40, 40)
	for _, p := range []Point{{X: -1, Y: 5}, {X: 40, Y: 5}, {X: 5, Y: 40}, {X: 5, Y: -0.5}} {
		if IsBackground(sky.SampleColor(p)) {
			t.Fatalf("off-raster sample at %s read as sky", p)
		}
	}
	if _, ok := sky.FirstSolidY(-1); ok {
		t.Fatal("off-raster column should report no solid pixel")
	}
}

func TestSkyline_SpriteKeepsTransparency(t *testing.T) {
	cfg := DefaultConfig()
	sprites := NewSpriteSet(cfg)
	sky := NewSkyline(100, 100)
	sky.DrawSprite(sprites.Avatar, Point{X: 20, Y: 30})

	// Top-left mask cell of the avatar is transparent.
	if !IsBackground(sky.SampleColor(Point{X: 20, Y: 30})) {
		t.Fatal("transparent sprite pixel should leave sky")
	}
	// Mask row 0 is solid from column 4, i.e. pixel 8 at 2x scale.
	if IsBackground(sky.SampleColor(Point{X: 28, Y: 30})) {
		t.Fatal("opaque sprite pixel should be solid")
	}
	if y, ok := sky.FirstSolidY(28); !ok || y != 30 {
		t.Fatalf("column under sprite top = (%d, %v), want (30, true)", y, ok)
	}
	if sky.SkyFraction() >= 1 {
		t.Fatal("sky fraction should drop after drawing a sprite")
	}
}

func TestSkyline_ResetRestoresSky(t *testing.T) {
	sky := NewSkyline(30, 30)
	sky.FillRect(Box{X: 0, Y: 0, W: 30, H: 30}, color.RGBA{R: 1, A: 255})
	sky.Reset()
	if sky.SkyFraction() != 1 {
		t.Fatal("Reset should repaint the raster with sky")
	}
	if _, ok := sky.FirstSolidY(10); ok {
		t.Fatal("Reset should clear the column index")
	}
}

func TestSprites_Sizes(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSpriteSet(cfg)
	if w, h := s.Avatar.Size(); w != cfg.AvatarWidth || h != cfg.AvatarHeight {
		t.Fatalf("avatar %dx%d, want %dx%d", w, h, cfg.AvatarWidth, cfg.AvatarHeight)
	}
	if len(s.Projectile) != cfg.SpriteFrames {
		t.Fatalf("projectile frames = %d, want %d", len(s.Projectile), cfg.SpriteFrames)
	}
	for i, f := range s.Projectile {
		if w, h := f.Size(); w != cfg.ProjectileWidth || h != cfg.ProjectileHeight {
			t.Fatalf("frame %d is %dx%d", i, w, h)
		}
	}
	if string(s.Projectile[0].Img.Pix) == string(s.Projectile[1].Img.Pix) {
		t.Fatal("consecutive frames should be rotated")
	}
}
