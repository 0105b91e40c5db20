package pulse

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	headerLineWidth  = 2
	hoverStrokeWidth = 3
	burstStrokeWidth = 3
)

// Renderer draws Frames. It holds fonts only; every other input comes from
// the Frame, so drawing never touches game state.
type Renderer struct {
	headerFont *TTFFont
	labelFont  *TTFFont
}

// NewRenderer loads the default fonts.
func NewRenderer() (*Renderer, error) {
	header, label, err := loadDefaultFonts()
	if err != nil {
		return nil, err
	}
	return &Renderer{headerFont: header, labelFont: label}, nil
}

// Draw renders f onto screen: background, header, nodes with labels, hover
// outline, then the click burst.
func (r *Renderer) Draw(screen *ebiten.Image, f Frame) {
	screen.Fill(f.Background.toRGBA())

	r.drawHeader(screen, f)

	for i := range f.Nodes {
		r.drawNode(screen, &f.Nodes[i])
	}

	if f.Burst.Active {
		vector.StrokeCircle(screen, float32(f.Burst.X), float32(f.Burst.Y), float32(f.Burst.R),
			burstStrokeWidth, ColorYellow.toRGBA(), true)
	}
}

func (r *Renderer) drawHeader(screen *ebiten.Image, f Frame) {
	vector.StrokeLine(screen, 0, float32(f.Header), float32(f.Width), float32(f.Header),
		headerLineWidth, ColorWhite.toRGBA(), false)
	drawCenteredText(screen, f.Status, r.headerFont, f.Width/2, f.Header/2, ColorWhite)
}

func (r *Renderer) drawNode(screen *ebiten.Image, n *NodeView) {
	x, y, rad := float32(n.X), float32(n.Y), float32(n.R)
	vector.FillCircle(screen, x, y, rad, n.Fill.toRGBA(), true)
	if n.Label != "" {
		drawCenteredText(screen, n.Label, r.labelFont, n.X, n.Y, ColorBlack)
	}
	if n.Hovered {
		vector.StrokeCircle(screen, x, y, rad, hoverStrokeWidth, ColorLightBlue.toRGBA(), true)
	}
}

// drawCenteredText draws s centred on (x, y).
func drawCenteredText(dst *ebiten.Image, s string, f *TTFFont, x, y float64, c Color) {
	if s == "" || f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = f.LineHeight()
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, f.Face(), op)
}
