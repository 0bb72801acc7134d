package starfield

// drawCall is one recorded Surface operation.
type drawCall struct {
	Op    string
	X, Y  float64
	R     float64
	Color Color
	Stops []ColorStop
}

// recorder is a Surface that remembers every call.
type recorder struct {
	Calls []drawCall
}

func (r *recorder) FillRect(x, y, w, h float64, c Color) {
	r.Calls = append(r.Calls, drawCall{Op: "rect", X: x, Y: y, Color: c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c Color) {
	r.Calls = append(r.Calls, drawCall{Op: "circle", X: cx, Y: cy, R: rad, Color: c})
}

func (r *recorder) FillRadialGradient(cx, cy, rad float64, stops ...ColorStop) {
	r.Calls = append(r.Calls, drawCall{Op: "radial", X: cx, Y: cy, R: rad, Stops: stops})
}

func (r *recorder) StrokeLinearGradient(x0, y0, x1, y1, width float64, stops ...ColorStop) {
	r.Calls = append(r.Calls, drawCall{Op: "line", X: x1, Y: y1, R: width, Stops: stops})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// fixedRand returns the same value forever.
type fixedRand float64

func (f fixedRand) Random() float64 { return float64(f) }

func (f fixedRand) RandomFloat(min, max float64) float64 {
	return float64(f)*(max-min) + min
}

// seqRand replays values in order and then repeats the last one.
type seqRand struct {
	values []float64
	i      int
}

func (s *seqRand) Random() float64 {
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v
}

func (s *seqRand) RandomFloat(min, max float64) float64 {
	return s.Random()*(max-min) + min
}
