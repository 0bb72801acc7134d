package starfield

// Surface is the 2D render target. Coordinates are logical pixels; the host
// maps them onto its backing store.
type Surface interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// FillCircle fills a disk with a flat colour.
	FillCircle(cx, cy, r float64, c Color)
	// FillRadialGradient fills a disk whose colour runs from stops at the
	// centre to the last stop at radius r.
	FillRadialGradient(cx, cy, r float64, stops ...ColorStop)
	// StrokeLinearGradient strokes a line whose colour runs along it from
	// the first stop at (x0, y0) to the last at (x1, y1).
	StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...ColorStop)
}

// Rand is the random source entities draw their attributes from.
type Rand interface {
	// Random returns a value in [0, 1).
	Random() float64
	// RandomFloat returns a value in [min, max).
	RandomFloat(min, max float64) float64
}

// Reseeder is a Rand that can be rewound to its seed or restarted from a
// new one.
type Reseeder interface {
	Rand
	Seed() uint32
	SetSeed(seed uint32)
	Reset()
}
