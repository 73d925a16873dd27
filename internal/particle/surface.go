package particle

import "image/color"

// Surface is the 2D target a Field draws onto. Global alpha travels in the
// color's alpha channel.
type Surface interface {
	Clear()
	FillCircle(x, y, r float32, clr color.Color)
	StrokeCircle(x, y, r, width float32, clr color.Color)
}
