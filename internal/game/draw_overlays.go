package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cornerProbe is one skyline sample taken by the edge-collision test.
type cornerProbe struct {
	At    Point
	Solid bool
}

// probeCorners returns the four samples the edge test takes for a projectile
// at pos, in Box.Corners order.
func probeCorners(cfg Config, sky Sampler, pos Point) [4]cornerProbe {
	var out [4]cornerProbe
	for i, c := range edgeRect(cfg, pos).Corners() {
		out[i] = cornerProbe{At: c, Solid: !IsBackground(sky.SampleColor(c))}
	}
	return out
}

// drawCollisionOverlay shows what the collision oracle sees this frame: the
// opponent's box, the projectile's two test rectangles and the sampled
// corners, plus the column tops under both avatars.
func (g *Game) drawCollisionOverlay(screen *ebiten.Image) {
	m := g.match
	ox, oy := float32(g.offX), float32(g.offY)

	for i := range m.Avatars {
		b := m.AvatarBox(i)
		col := color.RGBA{R: 90, G: 200, B: 90, A: 160}
		if i == m.CurrentPlayer() {
			col = color.RGBA{R: 240, G: 220, B: 90, A: 200}
		}
		vector.StrokeRect(screen, ox+float32(b.X), oy+float32(b.Y), float32(b.W), float32(b.H), 1.0, col, false)

		// Roof marker under the avatar's centre column.
		cx := int(b.X + b.W/2)
		if y, ok := m.Sky.FirstSolidY(cx); ok {
			vector.StrokeLine(screen, ox+float32(cx)-6, oy+float32(y), ox+float32(cx)+6, oy+float32(y),
				1.0, color.RGBA{R: 255, G: 255, B: 255, A: 140}, false)
		}
	}

	res, ok := m.Projectile()
	if !ok {
		return
	}
	th, _ := m.InFlight()
	pos := res.Position

	er := edgeRect(g.cfg, pos)
	vector.StrokeRect(screen, ox+float32(er.X), oy+float32(er.Y), float32(er.W), float32(er.H),
		1.0, color.RGBA{R: 255, G: 200, B: 40, A: 200}, false)
	ar := avatarRect(g.cfg, pos)
	vector.StrokeRect(screen, ox+float32(ar.X), oy+float32(ar.Y), float32(ar.W), float32(ar.H),
		1.0, color.RGBA{R: 60, G: 200, B: 255, A: 160}, false)

	// Above the map the oracle is skipped, so the corners are not sampled.
	if pos.Y > 0 {
		for _, c := range probeCorners(g.cfg, m.Sky, pos) {
			col := color.RGBA{R: 60, G: 230, B: 60, A: 255}
			if c.Solid {
				col = color.RGBA{R: 255, G: 40, B: 40, A: 255}
			}
			vector.FillRect(screen, ox+float32(c.At.X)-1, oy+float32(c.At.Y)-1, 3, 3, col, false)
		}
	}

	lines := []string{
		fmt.Sprintf("P%d throw v=(%.0f,%.0f)", th.Thrower+1, th.Velocity.X, th.Velocity.Y),
		fmt.Sprintf("pos %s", pos),
		fmt.Sprintf("dt %.2f frame %d", res.DeltaTime, res.Frame),
	}

	const lineH = 14
	const padX = 6
	const padY = 4
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	sx := ox + 8
	sy := oy + float32(g.cfg.PixelHeight()) - float32(len(lines)*lineH+padY*2) - 8
	bgW := float32(maxLen*6 + padX*2)
	bgH := float32(len(lines)*lineH + padY*2)
	vector.FillRect(screen, sx, sy, bgW, bgH, color.RGBA{R: 15, G: 18, B: 15, A: 200}, false)
	vector.StrokeRect(screen, sx, sy, bgW, bgH, 1.0, color.RGBA{R: 200, G: 200, B: 80, A: 160}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(sx)+padX, int(sy)+padY+i*lineH)
	}
}
