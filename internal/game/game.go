package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the map.
const borderWidth = 16

// hudHeight is the strip under the map reserved for messages and key help.
const hudHeight = 48

// roundOverDelayMs is how long the winner banner stays up before the next round.
const roundOverDelayMs = 2500

// Game is the ebiten front end. It owns the window, turns mouse input into
// drag gestures and drives the match once per frame.
type Game struct {
	match *Match
	cfg   Config

	width  int
	height int
	offX   int
	offY   int

	skyImg     *ebiten.Image
	skyVersion int
	frameImgs  []*ebiten.Image
	sunImg     *ebiten.Image

	prevKeys    map[ebiten.Key]bool
	roundOverMs float64
	status      string // one-shot feedback such as clipboard results
	overlay     bool   // collision debug overlay
	hud         *hudFaces
}

// New builds a window game for cfg. seed drives every random choice in the
// session.
func New(cfg Config, seed int64) (*Game, error) {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	m, err := NewMatch(cfg, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		match:      m,
		cfg:        cfg,
		width:      borderWidth + cfg.PixelWidth() + borderWidth,
		height:     borderWidth + cfg.PixelHeight() + hudHeight,
		offX:       borderWidth,
		offY:       borderWidth,
		skyImg:     ebiten.NewImage(cfg.PixelWidth(), cfg.PixelHeight()),
		skyVersion: -1,
		sunImg:     ebiten.NewImageFromImage(m.Sprites.Sun.Img),
		prevKeys:   make(map[ebiten.Key]bool),
		hud:        newHUDFaces(),
	}
	for _, f := range m.Sprites.Projectile {
		g.frameImgs = append(g.frameImgs, ebiten.NewImageFromImage(f.Img))
	}
	return g, nil
}

// WindowSize is the unscaled window size the game lays out to.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

// Match exposes the session state.
func (g *Game) Match() *Match { return g.match }

func (g *Game) Update() error {
	frameMs := 1000.0 / float64(ebiten.TPS())
	g.handleInput()

	switch g.match.Phase {
	case PhaseInFlight:
		g.match.Advance(frameMs)
	case PhaseRoundOver:
		g.roundOverMs += frameMs
		if g.roundOverMs >= roundOverDelayMs {
			g.roundOverMs = 0
			g.match.NextRound()
		}
	}
	return nil
}

// handleInput turns the left mouse button into drag gestures and processes
// edge-triggered keys.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	p := Point{X: float64(mx - g.offX), Y: float64(my - g.offY)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.match.DragStart(p)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.match.DragMove(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.match.DragEnd(p)
	}

	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// N: abandon the round and deal a new skyline.
	if pressed(ebiten.KeyN) {
		g.roundOverMs = 0
		g.match.NextRound()
	}
	// Escape: drop the aim gesture.
	if pressed(ebiten.KeyEscape) {
		g.match.Aim = Aim{}
	}
	// D: toggle the collision overlay.
	if pressed(ebiten.KeyD) {
		g.overlay = !g.overlay
	}
	// C: copy the session summary.
	if pressed(ebiten.KeyC) {
		if err := CopyReport(MatchSummary(g.match)); err != nil {
			log.Printf("clipboard: %v", err)
			g.status = "clipboard unavailable"
		} else {
			g.status = "summary copied"
		}
	}

	g.prevKeys = currentKeys
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 24, A: 255})

	if v := g.match.Sky.Version(); v != g.skyVersion {
		g.skyImg.WritePixels(g.match.Sky.Image().Pix)
		g.skyVersion = v
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(g.offX), float64(g.offY))
	screen.DrawImage(g.skyImg, &op)

	ox, oy := float32(g.offX), float32(g.offY)
	vector.StrokeRect(screen, ox-1, oy-1, float32(g.cfg.PixelWidth())+2, float32(g.cfg.PixelHeight())+2,
		2.0, color.RGBA{R: 60, G: 60, B: 110, A: 255}, false)

	// Sun, top centre, outside the collision raster.
	sw, _ := g.match.Sprites.Sun.Size()
	var sunOp ebiten.DrawImageOptions
	sunOp.GeoM.Translate(float64(g.offX+g.cfg.PixelWidth()/2-sw/2), float64(g.offY+10))
	screen.DrawImage(g.sunImg, &sunOp)

	if aim := g.match.Aim; aim.Active {
		vector.StrokeLine(screen,
			ox+float32(aim.Start.X), oy+float32(aim.Start.Y),
			ox+float32(aim.Current.X), oy+float32(aim.Current.Y),
			1.5, aimLine, true)
	}

	if res, ok := g.match.Projectile(); ok && len(g.frameImgs) > 0 {
		var pop ebiten.DrawImageOptions
		pop.GeoM.Translate(float64(g.offX)+res.Position.X, float64(g.offY)+res.Position.Y)
		screen.DrawImage(g.frameImgs[res.Frame%len(g.frameImgs)], &pop)
	}

	if g.overlay {
		g.drawCollisionOverlay(screen)
	}
	g.drawHUD(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// statusLine is the text under the map: the latest match message plus any
// one-shot status.
func (g *Game) statusLine() string {
	msg := ""
	if e, ok := g.match.Msgs.Last(); ok {
		msg = e.Message
	}
	if g.status != "" {
		msg = fmt.Sprintf("%s  [%s]", msg, g.status)
	}
	return msg
}
