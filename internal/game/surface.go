package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvasSurface lets the particle field draw onto an offscreen ebiten image.
type canvasSurface struct {
	img *ebiten.Image
}

func (s *canvasSurface) Clear() { s.img.Clear() }

func (s *canvasSurface) FillCircle(x, y, r float32, clr color.Color) {
	vector.DrawFilledCircle(s.img, x, y, r, clr, true)
}

func (s *canvasSurface) StrokeCircle(x, y, r, width float32, clr color.Color) {
	vector.StrokeCircle(s.img, x, y, r, width, clr, true)
}
