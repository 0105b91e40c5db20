package pulse

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// clickDeadZone is how far the pointer may travel between press and
// release for the release to still count as a click.
const clickDeadZone = 4.0

// pointerState tracks the primary pointer between frames.
type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
}

// Game adapts a Router to ebiten.Game. It polls mouse, touch and typed
// characters each Update, turns them into router calls, and draws the
// router's Frame.
type Game struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// ShowFPS draws the FPS/TPS overlay.
	ShowFPS bool

	router   *Router
	renderer *Renderer
	log      *Logger
	debug    bool
	now      func() time.Time

	width, height int

	pointer         pointerState
	runes           []rune
	touchIDs        []ebiten.TouchID
	touching        bool
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	screenshotKey   bool

	stats      frameStats
	updateTime time.Duration
}

// NewGame builds the session, router and renderer from cfg.
func NewGame(cfg Config) (*Game, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	log := NewLogger(nil, cfg.Debug)
	session := NewSession(cfg)
	session.SetLogger(log)

	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	return &Game{
		ScreenshotDir: dir,
		ShowFPS:       cfg.ShowFPS,
		router:        NewRouter(session),
		renderer:      renderer,
		log:           log,
		debug:         cfg.Debug,
		now:           time.Now,
		width:         cfg.Width,
		height:        cfg.Height,
		screenshotKey: cfg.ScreenshotDir != "",
	}, nil
}

// Router returns the router driven by the game.
func (g *Game) Router() *Router { return g.router }

// Logger returns the game's logger.
func (g *Game) Logger() *Logger { return g.log }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}
	now := g.now()

	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if !g.processInjectedInput(now) {
		g.processPointerInput(now)
		g.processKeys(now)
	}
	g.router.Update(now)

	if g.debug {
		g.updateTime = time.Since(t0)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	g.renderer.Draw(screen, g.router.Frame())
	if g.ShowFPS {
		drawFPS(screen)
	}
	g.flushScreenshots(screen)

	if g.debug {
		g.stats.record(g.log, g.updateTime, time.Since(t0))
	}
}

// Layout implements ebiten.Game. The canvas always matches the window, and
// a size change is forwarded as a resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.router.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// processPointerInput reads the first active touch, or the mouse when no
// touch is active, and feeds the pointer state machine.
func (g *Game) processPointerInput(now time.Time) {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(g.touchIDs[0])
		g.touching = true
		g.processPointer(float64(tx), float64(ty), true, now)
		return
	}
	if g.touching {
		// Lifted fingers have no position; release where the touch was last seen.
		g.touching = false
		g.processPointer(g.pointer.lastX, g.pointer.lastY, false, now)
		return
	}
	mx, my := ebiten.CursorPosition()
	g.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), now)
}

// processPointer runs the press/move/release state machine for the
// primary pointer. A release close to its press also produces a click,
// delivered after the release.
func (g *Game) processPointer(x, y float64, pressed bool, now time.Time) {
	ps := &g.pointer
	moved := x != ps.lastX || y != ps.lastY

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		g.router.PointerDown(x, y, now)

	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = x, y
		g.router.PointerUp(x, y, now)
		if math.Hypot(x-ps.startX, y-ps.startY) <= clickDeadZone {
			g.router.Click(x, y, now)
		} else {
			g.router.releaseWithoutClick()
		}

	case moved:
		ps.lastX, ps.lastY = x, y
		g.router.PointerMove(x, y, now)
	}
}

// processKeys forwards typed command characters and the screenshot key.
func (g *Game) processKeys(now time.Time) {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if k := KeyFromRune(r); k != KeyNone {
			g.router.Key(k, now)
		}
	}
	if g.screenshotKey && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}
}
