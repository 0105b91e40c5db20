package pulse

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlayHeight leaves room for two lines of the debug font.
const fpsOverlayHeight = 32

// drawFPS prints the current FPS and TPS in the bottom-left corner, clear
// of the header.
func drawFPS(screen *ebiten.Image) {
	y := screen.Bounds().Dy() - fpsOverlayHeight
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, y)
}
