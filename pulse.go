package pulse

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// Palette used by the game. Values follow the CSS named colors of the same name.
var (
	ColorBlack     = Color{0, 0, 0, 1}
	ColorWhite     = Color{1, 1, 1, 1}
	ColorDarkRed   = Color{0.545, 0, 0, 1}
	ColorDarkGrey  = Color{0.663, 0.663, 0.663, 1}
	ColorLightBlue = Color{0.678, 0.847, 0.902, 1}
	ColorYellow    = Color{1, 1, 0, 1}
)

// toRGBA converts to a premultiplied color.RGBA for ebiten draw calls.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ColorFromHSL converts hue (degrees), saturation and lightness in [0, 1] to
// an opaque Color.
func ColorFromHSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mode is the phase of a game session.
type Mode uint8

const (
	ModeSetup Mode = iota // ring shown, settings adjustable, no timer
	ModePlay              // timer running, targets dilating
	ModeEnd               // timer stopped, result shown
)

func (m Mode) String() string {
	switch m {
	case ModeSetup:
		return "setup"
	case ModePlay:
		return "play"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// DilationFunc selects the waveform a node's radius follows during play.
type DilationFunc uint8

const (
	DilationSine DilationFunc = iota
	DilationCosine
)

// Key identifies a game command key.
type Key uint8

const (
	KeyNone       Key = iota
	KeySpace          // reshuffle in setup, restart in end
	KeyCheat          // resolve the active target in play
	KeyFewerNodes     // '['
	KeyMoreNodes      // ']'
	KeySlower         // '{'
	KeyFaster         // '}'
)

// KeyFromRune maps a typed character to its game command.
func KeyFromRune(r rune) Key {
	switch r {
	case ' ':
		return KeySpace
	case 'c', 'C':
		return KeyCheat
	case '[':
		return KeyFewerNodes
	case ']':
		return KeyMoreNodes
	case '{':
		return KeySlower
	case '}':
		return KeyFaster
	default:
		return KeyNone
	}
}

// Layout and tuning constants.
const (
	HeaderHeight = 50.0

	MinNodeRadius = 15.0
	MaxNodeRadius = 45.0

	DefaultNodeCount = 6
	MinNodeCount     = 3
	MaxNodeCount     = 8

	DefaultRotationSpeed = 5.0 // degrees per second
	MinRotationSpeed     = 1.0
	MaxRotationSpeed     = 10.0

	DilationPeriod = 3.6 // seconds per full oscillation

	ClickBurstDuration    = 1.0 / 3.0 // seconds
	ClickBurstStartRadius = 15.0
	ClickBurstEndRadius   = 45.0
)

const setupHeader = "click target 1 to begin"
