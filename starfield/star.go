package starfield

import "math"

// Star is one point of light. Its base position is a fixed offset from the
// viewport centre; parallax slides it with the input offset, nearer stars
// (smaller Z) sliding further.
type Star struct {
	BaseX, BaseY float64
	Z            float64
	Size         float64
	Brightness   float64
	TwinklePhase float64
	TwinkleSpeed float64
	Hue          float64

	// Derived each frame
	X, Y              float64
	CurrentBrightness float64
}

// NewStar creates a star placed for a centred input offset.
func NewStar(rng Rand, vp Viewport) *Star {
	s := &Star{}
	s.Reset(rng, vp, 0, 0)
	return s
}

// Reset respawns the star with fresh attributes. The new base offset is
// drawn from ±1 viewport around the centre and redrawn until the star lands
// within OffscreenMargin for the given input offset.
func (s *Star) Reset(rng Rand, vp Viewport, offsetX, offsetY float64) {
	s.Z = rng.Random() * DepthRange
	s.Size = rng.RandomFloat(0.5, 2.5)
	s.Brightness = rng.RandomFloat(0.5, 1)
	s.TwinkleSpeed = rng.RandomFloat(0.01, 0.03)
	s.TwinklePhase = rng.Random() * math.Pi * 2
	s.Hue = rng.RandomFloat(Theme.HueMin, Theme.HueMin+Theme.HueSpan)
	s.twinkle()

	for i := 0; i < maxRespawnAttempts; i++ {
		s.BaseX = (rng.Random() - 0.5) * vp.Width * 2
		s.BaseY = (rng.Random() - 0.5) * vp.Height * 2
		s.place(offsetX, offsetY, vp)
		if vp.Contains(s.X, s.Y, OffscreenMargin) {
			return
		}
	}

	// Offsets far outside the window: pick a visible spot directly.
	shift := s.Parallax() * StarParallaxScale
	cx, cy := vp.Center()
	s.BaseX = rng.Random()*vp.Width - cx - offsetX*shift
	s.BaseY = rng.Random()*vp.Height - cy - offsetY*shift
	s.place(offsetX, offsetY, vp)
}

// Parallax is 1 for the nearest stars and approaches 0 at DepthRange.
func (s *Star) Parallax() float64 {
	return 1 - s.Z/DepthRange
}

// Update moves the star for the input offset, advances its twinkle and
// respawns it if it has drifted past the margin.
func (s *Star) Update(offsetX, offsetY float64, vp Viewport, rng Rand) {
	s.place(offsetX, offsetY, vp)

	s.TwinklePhase += s.TwinkleSpeed
	s.twinkle()

	if !vp.Contains(s.X, s.Y, OffscreenMargin) {
		s.Reset(rng, vp, offsetX, offsetY)
	}
}

func (s *Star) place(offsetX, offsetY float64, vp Viewport) {
	cx, cy := vp.Center()
	shift := s.Parallax() * StarParallaxScale
	s.X = cx + s.BaseX + offsetX*shift
	s.Y = cy + s.BaseY + offsetY*shift
}

// twinkle keeps the brightness within [0.4, 1.0] of the base.
func (s *Star) twinkle() {
	s.CurrentBrightness = s.Brightness * (0.7 + 0.3*math.Sin(s.TwinklePhase))
}

// Alpha is the drawn opacity; deeper stars are dimmer.
func (s *Star) Alpha() float64 {
	return s.CurrentBrightness * (1 - s.Z/StarAlphaDepth)
}

// Radius is the drawn core radius; deeper stars are smaller.
func (s *Star) Radius() float64 {
	return s.Size * (1 - s.Z/StarSizeDepth)
}

// Draw renders the star. The simple path uses two flat disks; the full path
// a radial glow three times the core radius.
func (s *Star) Draw(sf Surface, simpleGlow bool) {
	alpha := s.Alpha()
	r := s.Radius()

	if simpleGlow {
		sf.FillCircle(s.X, s.Y, r*1.5, HSLA(s.Hue, 60, 80, alpha*0.5))
	} else {
		sf.FillRadialGradient(s.X, s.Y, r*3,
			ColorStop{0, HSLA(s.Hue, 80, 90, alpha)},
			ColorStop{0.5, HSLA(s.Hue, 60, 70, alpha*0.3)},
			ColorStop{1, HSLA(s.Hue, 40, 50, 0)},
		)
	}

	// Core
	sf.FillCircle(s.X, s.Y, r, HSLA(s.Hue, 20, 100, alpha))
}
