package desktop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simukka/starfield/starfield"
)

// Gradient approximation limits
const (
	minGradientRings = 3
	maxGradientRings = 24
	lineSegments     = 8
)

// Surface draws onto an ebiten image. Scale maps logical pixels onto the
// image, the way the canvas context is scaled by the pixel ratio.
type Surface struct {
	Dst   *ebiten.Image
	Scale float64
}

var _ starfield.Surface = (*Surface)(nil)

func (s *Surface) px(v float64) float32 {
	return float32(v * s.Scale)
}

// FillRect implements starfield.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c starfield.Color) {
	vector.DrawFilledRect(s.Dst, s.px(x), s.px(y), s.px(w), s.px(h), c.NRGBA(), false)
}

// FillCircle implements starfield.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c starfield.Color) {
	vector.DrawFilledCircle(s.Dst, s.px(cx), s.px(cy), s.px(r), c.NRGBA(), true)
}

// FillRadialGradient implements starfield.Surface with concentric rings,
// each painted in the gradient colour at its mid radius.
func (s *Surface) FillRadialGradient(cx, cy, r float64, stops ...starfield.ColorStop) {
	rings := GradientRings(r * s.Scale)
	step := r / float64(rings)

	vector.DrawFilledCircle(s.Dst, s.px(cx), s.px(cy), s.px(step),
		starfield.ColorAt(stops, 0.5/float64(rings)).NRGBA(), true)

	for i := 1; i < rings; i++ {
		t := (float64(i) + 0.5) / float64(rings)
		vector.StrokeCircle(s.Dst, s.px(cx), s.px(cy), s.px(step*(float64(i)+0.5)), s.px(step),
			starfield.ColorAt(stops, t).NRGBA(), true)
	}
}

// StrokeLinearGradient implements starfield.Surface with short segments.
func (s *Surface) StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...starfield.ColorStop) {
	dx := (x1 - x0) / lineSegments
	dy := (y1 - y0) / lineSegments
	for i := 0; i < lineSegments; i++ {
		fi := float64(i)
		t := (fi + 0.5) / lineSegments
		vector.StrokeLine(s.Dst,
			s.px(x0+dx*fi), s.px(y0+dy*fi),
			s.px(x0+dx*(fi+1)), s.px(y0+dy*(fi+1)),
			s.px(width), starfield.ColorAt(stops, t).NRGBA(), true)
	}
}

// GradientRings picks how many rings approximate a gradient of the given
// radius in device pixels: about one ring per two pixels.
func GradientRings(radius float64) int {
	n := int(math.Ceil(radius / 2))
	if n < minGradientRings {
		return minGradientRings
	}
	if n > maxGradientRings {
		return maxGradientRings
	}
	return n
}
