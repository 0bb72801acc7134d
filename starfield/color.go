package starfield

import (
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorModel tells how the three channels of a Color are read.
type ColorModel uint8

const (
	// ModelRGB channels are red, green, blue in [0, 255].
	ModelRGB ColorModel = iota
	// ModelHSL channels are hue in degrees and saturation, lightness in percent.
	ModelHSL
)

// Color is a colour with straight (non-premultiplied) alpha in [0, 1].
type Color struct {
	Model   ColorModel
	X, Y, Z float64
	Alpha   float64
}

// ColorStop is one stop of a gradient; Offset runs from 0 (start/centre)
// to 1 (end/edge).
type ColorStop struct {
	Offset float64
	Color  Color
}

// RGBA builds an RGB colour.
func RGBA(r, g, b, a float64) Color {
	return Color{Model: ModelRGB, X: r, Y: g, Z: b, Alpha: a}
}

// HSLA builds an HSL colour; s and l are percentages.
func HSLA(h, s, l, a float64) Color {
	return Color{Model: ModelHSL, X: h, Y: s, Z: l, Alpha: a}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = a
	return c
}

// CSS formats c as a canvas fill/stroke style.
func (c Color) CSS() string {
	if c.Model == ModelHSL {
		return "hsla(" + num(c.X) + ", " + num(c.Y) + "%, " + num(c.Z) + "%, " + num(c.Alpha) + ")"
	}
	return "rgba(" + num(c.X) + ", " + num(c.Y) + ", " + num(c.Z) + ", " + num(c.Alpha) + ")"
}

// NRGBA converts c for raster backends.
func (c Color) NRGBA() color.NRGBA {
	a := channel(c.Alpha * 255)
	if c.Model == ModelHSL {
		r, g, b := colorful.Hsl(normalizeHue(c.X), clamp01(c.Y/100), clamp01(c.Z/100)).Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: a}
	}
	return color.NRGBA{R: channel(c.X), G: channel(c.Y), B: channel(c.Z), A: a}
}

// ColorAt samples a gradient at offset t, for backends that have no native
// gradient fill. Stops must be sorted by offset.
func ColorAt(stops []ColorStop, t float64) Color {
	if len(stops) == 0 {
		return Color{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Offset {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return mix(lo.Color, hi.Color, (t-lo.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

// mix linearly interpolates two colours; mixed models are blended in RGB.
func mix(a, b Color, t float64) Color {
	if a.Model != b.Model {
		an, bn := a.NRGBA(), b.NRGBA()
		return RGBA(
			lerp(float64(an.R), float64(bn.R), t),
			lerp(float64(an.G), float64(bn.G), t),
			lerp(float64(an.B), float64(bn.B), t),
			lerp(a.Alpha, b.Alpha, t),
		)
	}
	return Color{
		Model: a.Model,
		X:     lerp(a.X, b.X, t),
		Y:     lerp(a.Y, b.Y, t),
		Z:     lerp(a.Z, b.Z, t),
		Alpha: lerp(a.Alpha, b.Alpha, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
