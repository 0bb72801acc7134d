package canvas

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starfield/starfield"
)

// Surface draws onto a CanvasRenderingContext2D.
type Surface struct {
	Ctx *js.Object
}

var _ starfield.Surface = (*Surface)(nil)

// FillRect implements starfield.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c starfield.Color) {
	s.Ctx.Set("fillStyle", c.CSS())
	s.Ctx.Call("fillRect", x, y, w, h)
}

// FillCircle implements starfield.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c starfield.Color) {
	s.Ctx.Call("beginPath")
	s.Ctx.Call("arc", cx, cy, r, 0, math.Pi*2)
	s.Ctx.Set("fillStyle", c.CSS())
	s.Ctx.Call("fill")
}

// FillRadialGradient implements starfield.Surface.
func (s *Surface) FillRadialGradient(cx, cy, r float64, stops ...starfield.ColorStop) {
	gradient := s.Ctx.Call("createRadialGradient", cx, cy, 0, cx, cy, r)
	addStops(gradient, stops)

	s.Ctx.Call("beginPath")
	s.Ctx.Call("arc", cx, cy, r, 0, math.Pi*2)
	s.Ctx.Set("fillStyle", gradient)
	s.Ctx.Call("fill")
}

// StrokeLinearGradient implements starfield.Surface.
func (s *Surface) StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...starfield.ColorStop) {
	gradient := s.Ctx.Call("createLinearGradient", x0, y0, x1, y1)
	addStops(gradient, stops)

	s.Ctx.Call("beginPath")
	s.Ctx.Call("moveTo", x0, y0)
	s.Ctx.Call("lineTo", x1, y1)
	s.Ctx.Set("strokeStyle", gradient)
	s.Ctx.Set("lineWidth", width)
	s.Ctx.Call("stroke")
}

func addStops(gradient *js.Object, stops []starfield.ColorStop) {
	for _, stop := range stops {
		gradient.Call("addColorStop", stop.Offset, stop.Color.CSS())
	}
}
