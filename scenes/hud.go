package scenes

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/gunline/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var colorHUD = color.RGBA{200, 200, 200, 255}

// HUD prints the simulation summary in the top-left corner.
type HUD struct {
	face text.Face
}

func NewHUD() (*HUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &HUD{face: &text.GoTextFace{Source: source, Size: 10}}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, sum sim.Summary, probes bool) {
	lines := []string{
		fmt.Sprintf("frame %d", sum.Frames),
		fmt.Sprintf("characters %d  grounded %d", sum.Characters, sum.Grounded),
		fmt.Sprintf("projectiles %d  bodies %d", sum.Projectiles, sum.Bodies),
	}
	if probes {
		lines = append(lines, "probes on (F3)")
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4, 4+float64(i)*12)
		op.ColorScale.ScaleWithColor(colorHUD)
		text.Draw(screen, line, h.face, op)
	}
}
