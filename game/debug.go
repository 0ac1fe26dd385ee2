package game

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugText summarises the field for the overlay
func debugText(field *Starfield, fps, tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f  frame: %d\n", fps, tps, field.Frames)
	for _, g := range field.Groups() {
		fmt.Fprintf(&b, "%-10s n=%-5d respawned=%d\n", g.Config.Kind, g.Len(), field.Respawns[g.Config.Kind])
	}
	fmt.Fprintf(&b, "sky: %.4f dir=%+.0f  aspect=%.3f", field.Sky.Fraction, field.Sky.Direction, field.Camera.Aspect)
	return b.String()
}

func drawDebugOverlay(screen *ebiten.Image, field *Starfield) {
	ebitenutil.DebugPrint(screen, debugText(field, ebiten.ActualFPS(), ebiten.ActualTPS()))
}
