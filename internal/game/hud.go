package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const hudLineH = 16

type hudFaces struct {
	body *text.GoXFace
}

func newHUDFaces() *hudFaces {
	return &hudFaces{body: text.NewGoXFace(basicfont.Face7x13)}
}

// drawText draws s with its top edge at y. align picks which end of the line
// sits at x.
func (h *hudFaces) drawText(dst *ebiten.Image, s string, x, y float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, s, h.body, op)
}

// drawHUD renders player labels, turn marker and scores over the map, and the
// message strip beneath it.
func (g *Game) drawHUD(screen *ebiten.Image) {
	left := float64(g.offX + 10)
	right := float64(g.offX + g.cfg.PixelWidth() - 10)
	top := float64(g.offY + 6)
	m := g.match

	g.hud.drawText(screen, fmt.Sprintf("Player 1  %d", m.Scores[0]), left, top, text.AlignStart, hudText)
	g.hud.drawText(screen, fmt.Sprintf("%d  Player 2", m.Scores[1]), right, top, text.AlignEnd, hudText)

	switch m.Phase {
	case PhaseAiming, PhaseInFlight:
		if m.CurrentPlayer() == 0 {
			g.hud.drawText(screen, "Your turn", left, top+hudLineH, text.AlignStart, hudFocus)
		} else {
			g.hud.drawText(screen, "Your turn", right, top+hudLineH, text.AlignEnd, hudFocus)
		}
	case PhaseRoundOver:
		cx := float64(g.offX + g.cfg.PixelWidth()/2)
		cy := float64(g.offY + g.cfg.PixelHeight()/3)
		banner := fmt.Sprintf("Player %d wins round %d!", m.Winner+1, m.RoundNumber)
		bw := float32(len(banner)*7 + 24)
		vector.FillRect(screen, float32(cx)-bw/2, float32(cy)-6, bw, 26, color.RGBA{R: 0, G: 0, B: 0, A: 170}, false)
		g.hud.drawText(screen, banner, cx, cy, text.AlignCenter, hudFocus)
	}

	stripY := float64(g.offY + g.cfg.PixelHeight() + 6)
	g.hud.drawText(screen, g.statusLine(), left, stripY, text.AlignStart, hudText)
	g.hud.drawText(screen, "drag from your gorilla to throw   N=new round  C=copy summary  D=overlay  Esc=cancel aim",
		left, stripY+hudLineH, text.AlignStart, color.RGBA{R: 150, G: 150, B: 190, A: 255})
}
