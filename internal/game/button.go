package game

import (
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spectrum-particles/internal/config"
)

var (
	buttonNormal  = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHover   = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonPressed = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	buttonBorder  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

type button struct {
	x, y, w, h int
	label      string

	hovered bool
	pressed bool

	// eased hover highlight, 0..1
	spring harmonica.Spring
	glow   float64
	vel    float64
}

func newButton(label string) *button {
	return &button{
		x:      config.ButtonX,
		y:      config.ButtonY,
		w:      config.ButtonWidth,
		h:      config.ButtonHeight,
		label:  label,
		spring: harmonica.NewSpring(harmonica.FPS(config.TicksPerSecond), 8.0, 0.9),
	}
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update feeds one tick of mouse state and reports whether the button was
// clicked, i.e. pressed and released while hovered.
func (b *button) update(mouseX, mouseY int, justPressed, justReleased bool) bool {
	b.hovered = b.contains(mouseX, mouseY)

	target := 0.0
	if b.hovered {
		target = 1
	}
	b.glow, b.vel = b.spring.Update(b.glow, b.vel, target)

	clicked := false
	if b.hovered && justPressed {
		b.pressed = true
	}
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) fill() color.RGBA {
	if b.pressed {
		return buttonPressed
	}
	return lerpColor(buttonNormal, buttonHover, b.glow)
}

func (b *button) draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), b.fill(), false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, buttonBorder, false)

	textWidth := len(b.label) * 6 // debug font glyphs are 6px wide
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
