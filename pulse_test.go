package pulse

import (
	"image/color"
	"math"
	"testing"
)

func colorNear(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestColorFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    Color
	}{
		{"red", 0, 1, 0.5, Color{1, 0, 0, 1}},
		{"yellow", 60, 1, 0.5, Color{1, 1, 0, 1}},
		{"green", 120, 1, 0.5, Color{0, 1, 0, 1}},
		{"cyan", 180, 1, 0.5, Color{0, 1, 1, 1}},
		{"blue", 240, 1, 0.5, Color{0, 0, 1, 1}},
		{"magenta", 300, 1, 0.5, Color{1, 0, 1, 1}},
		{"wraps 360", 360, 1, 0.5, Color{1, 0, 0, 1}},
		{"negative hue", -120, 1, 0.5, Color{0, 0, 1, 1}},
		{"white", 200, 1, 1, Color{1, 1, 1, 1}},
		{"black", 200, 1, 0, Color{0, 0, 0, 1}},
		{"grey", 10, 0, 0.5, Color{0.5, 0.5, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorFromHSL(tt.h, tt.s, tt.l)
			if !colorNear(got, tt.want) {
				t.Errorf("ColorFromHSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{ColorWhite, color.RGBA{255, 255, 255, 255}},
		{ColorBlack, color.RGBA{0, 0, 0, 255}},
		{Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{Color{2, -1, 0.5, 1}, color.RGBA{255, 0, 128, 255}},
		{Color{1, 1, 1, 0}, color.RGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := tt.in.toRGBA(); got != tt.want {
			t.Errorf("%+v.toRGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{' ', KeySpace},
		{'c', KeyCheat},
		{'C', KeyCheat},
		{'[', KeyFewerNodes},
		{']', KeyMoreNodes},
		{'{', KeySlower},
		{'}', KeyFaster},
		{'x', KeyNone},
		{'1', KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromRune(tt.r); got != tt.want {
			t.Errorf("KeyFromRune(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeSetup, "setup"},
		{ModePlay, "play"},
		{ModeEnd, "end"},
		{Mode(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		e    EventType
		want string
	}{
		{EventStarted, "started"},
		{EventResolved, "resolved"},
		{EventMissed, "missed"},
		{EventFinished, "finished"},
		{EventAborted, "aborted"},
		{EventReset, "reset"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.e, got, tt.want)
		}
	}
}
