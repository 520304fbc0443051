package main

import (
	"fmt"
	"image"

	"github.com/Garsondee/Gorillas/internal/game"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// hudRows is the number of terminal rows above the map.
const hudRows = 1

// termView renders a match onto a terminal, one cell per cellW×cellH block of
// map pixels, and maps mouse cells back to map pixels.
type termView struct {
	screen tcell.Screen
	match  *game.Match
	cellW  int
	cellH  int
	cols   int
	rows   int
	cells  *image.RGBA // skyline downscaled to one pixel per cell
	seen   int         // skyline version last downscaled
	pushed bool        // mouse button state on the previous event
}

func newTermView(s tcell.Screen, m *game.Match, cellW, cellH int) *termView {
	cols := m.Cfg.PixelWidth() / cellW
	rows := m.Cfg.PixelHeight() / cellH
	return &termView{
		screen: s,
		match:  m,
		cellW:  cellW,
		cellH:  cellH,
		cols:   cols,
		rows:   rows,
		cells:  image.NewRGBA(image.Rect(0, 0, cols, rows)),
		seen:   -1,
	}
}

// pixelAt returns the map pixel at the centre of terminal cell (cx, cy).
func (v *termView) pixelAt(cx, cy int) game.Point {
	return game.Point{
		X: float64(cx*v.cellW + v.cellW/2),
		Y: float64((cy-hudRows)*v.cellH + v.cellH/2),
	}
}

// cellAt returns the terminal cell showing map pixel p.
func (v *termView) cellAt(p game.Point) (int, int) {
	px := p.Pixel()
	return floorDiv(px.X, v.cellW), floorDiv(px.Y, v.cellH) + hudRows
}

// floorDiv rounds toward negative infinity so pixels left of or above the map
// land outside it.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// handleMouse turns button transitions into drag gestures.
func (v *termView) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := v.pixelAt(x, y)
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !v.pushed:
		v.match.DragStart(p)
	case down:
		v.match.DragMove(p)
	case v.pushed:
		v.match.DragEnd(p)
	}
	v.pushed = down
}

func (v *termView) render() {
	m := v.match
	if ver := m.Sky.Version(); ver != v.seen {
		src := m.Sky.Image()
		draw.NearestNeighbor.Scale(v.cells, v.cells.Bounds(), src, src.Bounds(), draw.Src, nil)
		v.seen = ver
	}

	v.screen.Clear()
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			c := v.cells.RGBAAt(x, y)
			st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			v.screen.SetContent(x, y+hudRows, ' ', nil, st)
		}
	}

	if aim := m.Aim; aim.Active {
		x, y := v.cellAt(aim.Current)
		v.putRune(x, y, '+', tcell.ColorWhite)
	}
	if res, ok := m.Projectile(); ok {
		x, y := v.cellAt(res.Position)
		v.putRune(x, y, projectileGlyphs[res.Frame%len(projectileGlyphs)], tcell.ColorYellow)
	}

	v.putString(0, 0, v.statusLine(), tcell.ColorWhite)
	v.screen.Show()
}

var projectileGlyphs = []rune{'(', '^', ')', 'v'}

func (v *termView) statusLine() string {
	m := v.match
	turn := fmt.Sprintf("player %d to throw", m.CurrentPlayer()+1)
	if m.Phase == game.PhaseRoundOver {
		turn = fmt.Sprintf("player %d wins!", m.Winner+1)
	}
	msg := ""
	if e, ok := m.Msgs.Last(); ok {
		msg = e.Message
	}
	return fmt.Sprintf("P1 %d : %d P2 | round %d | %s | %s | n=new q=quit",
		m.Scores[0], m.Scores[1], m.RoundNumber, turn, msg)
}

func (v *termView) putRune(x, y int, r rune, fg tcell.Color) {
	if x < 0 || x >= v.cols || y < hudRows || y >= v.rows+hudRows {
		return
	}
	_, _, st, _ := v.screen.GetContent(x, y)
	v.screen.SetContent(x, y, r, nil, st.Foreground(fg))
}

func (v *termView) putString(x, y int, s string, fg tcell.Color) {
	st := tcell.StyleDefault.Foreground(fg)
	for i, r := range []rune(s) {
		if x+i >= v.cols {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, st)
	}
}
