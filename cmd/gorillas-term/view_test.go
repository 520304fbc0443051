package main

import (
	"testing"

	"github.com/Garsondee/Gorillas/internal/game"
	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T) (*termView, tcell.SimulationScreen) {
	t.Helper()
	ts, err := game.NewTestSim(game.WithSeed(21))
	if err != nil {
		t.Fatalf("NewTestSim: %v", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	v := newTermView(screen, ts.Match, 8, 16)
	screen.SetSize(v.cols, v.rows+hudRows)
	return v, screen
}

func TestTermView_CellPixelRoundTrip(t *testing.T) {
	v, _ := newTestView(t)
	if v.cols != 100 || v.rows != 25 {
		t.Fatalf("grid = %dx%d, want 100x25", v.cols, v.rows)
	}
	for _, c := range [][2]int{{0, hudRows}, {17, 5}, {v.cols - 1, v.rows}} {
		x, y := v.cellAt(v.pixelAt(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Fatalf("cell %v round-tripped to (%d,%d)", c, x, y)
		}
	}
}

func TestTermView_CellAtOffMap(t *testing.T) {
	v, _ := newTestView(t)
	cases := []struct {
		p      game.Point
		wx, wy int
	}{
		{game.Point{X: 40, Y: -5}, 5, hudRows - 1},
		{game.Point{X: 40, Y: -16}, 5, hudRows - 1},
		{game.Point{X: 40, Y: -17}, 5, hudRows - 2},
		{game.Point{X: -3, Y: 0}, -1, hudRows},
		{game.Point{X: 40, Y: 0}, 5, hudRows},
	}
	for _, tc := range cases {
		if x, y := v.cellAt(tc.p); x != tc.wx || y != tc.wy {
			t.Fatalf("cellAt(%s) = (%d,%d), want (%d,%d)", tc.p, x, y, tc.wx, tc.wy)
		}
	}
}

func TestTermView_ProjectileAboveMapHidden(t *testing.T) {
	v, screen := newTestView(t)
	m := v.match
	cfg := m.Cfg

	// Pick a vertical launch speed that puts the projectile 5px above the map
	// after one frame.
	launchY := m.Avatars[m.CurrentPlayer()].Y - cfg.LaunchOffsetY
	dt := game.DefaultFrameMs / cfg.TimeScale
	vy := (-5 - launchY - cfg.Gravity*dt*dt) / dt
	if !m.Throw(game.Vec{Y: vy}) {
		t.Fatal("throw refused")
	}
	res := m.Advance(game.DefaultFrameMs)
	if res.Outcome.Done() || res.Position.Y >= 0 || res.Position.Y < -float64(v.cellH) {
		t.Fatalf("projectile at %s (%s), want just above the map", res.Position, res.Outcome)
	}

	v.render()
	for x := 0; x < v.cols; x++ {
		if r, _, _, _ := screen.GetContent(x, hudRows); r != ' ' {
			t.Fatalf("first map row shows %q at column %d for a projectile above the map", r, x)
		}
	}
}

func TestTermView_MouseDragThrows(t *testing.T) {
	v, _ := newTestView(t)
	m := v.match
	p := m.Avatars[m.CurrentPlayer()]
	cx, cy := v.cellAt(game.Point{X: p.X + float64(m.Cfg.AvatarWidth)/2, Y: p.Y + float64(m.Cfg.AvatarHeight)/2})

	v.handleMouse(tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone))
	if !m.Aim.Active {
		t.Fatal("pressing on the avatar should start aiming")
	}
	v.handleMouse(tcell.NewEventMouse(cx+10, cy-5, tcell.Button1, tcell.ModNone))
	if m.Aim.Current != v.pixelAt(cx+10, cy-5) {
		t.Fatalf("aim did not follow the mouse: %s", m.Aim.Current)
	}
	v.handleMouse(tcell.NewEventMouse(cx+10, cy-5, tcell.ButtonNone, tcell.ModNone))
	if m.Phase != game.PhaseInFlight {
		t.Fatalf("release should throw, phase = %s", m.Phase)
	}
}

func TestTermView_Render(t *testing.T) {
	v, screen := newTestView(t)
	v.render()

	if r, _, _, _ := screen.GetContent(0, 0); r != 'P' {
		t.Fatalf("status line starts with %q, want 'P'", r)
	}
	sky := tcell.NewRGBColor(int32(game.SkyColor.R), int32(game.SkyColor.G), int32(game.SkyColor.B))
	_, _, st, _ := screen.GetContent(0, hudRows)
	if _, bg, _ := st.Decompose(); bg != sky {
		t.Fatalf("top-left map cell background = %v, want sky", bg)
	}
	_, _, st, _ = screen.GetContent(0, v.rows)
	if _, bg, _ := st.Decompose(); bg == sky {
		t.Fatal("bottom-left map cell should show a building")
	}
}
