package starfield

// Nebula is a large soft glow fixed in world space. Only its displayed
// position follows the input offset.
type Nebula struct {
	WorldX, WorldY float64
	Radius         float64
	Hue            float64
	Opacity        float64
	ParallaxFactor float64

	DisplayX, DisplayY float64
}

// NewNebula places a nebula anywhere inside the viewport.
func NewNebula(rng Rand, vp Viewport) *Nebula {
	n := &Nebula{
		WorldX:         rng.Random() * vp.Width,
		WorldY:         rng.Random() * vp.Height,
		Radius:         rng.RandomFloat(100, 300),
		Hue:            rng.RandomFloat(Theme.HueMin, Theme.HueMin+Theme.HueSpan),
		Opacity:        rng.RandomFloat(0.05, 0.15),
		ParallaxFactor: rng.RandomFloat(0.1, 0.4),
	}
	n.Update(0, 0)
	return n
}

// Update shifts the displayed position by the input offset scaled by the
// nebula's own parallax factor.
func (n *Nebula) Update(offsetX, offsetY float64) {
	n.DisplayX = n.WorldX + offsetX*n.ParallaxFactor
	n.DisplayY = n.WorldY + offsetY*n.ParallaxFactor
}

// Draw renders the glow, drifting 40° in hue toward the transparent edge.
func (n *Nebula) Draw(sf Surface) {
	sf.FillRadialGradient(n.DisplayX, n.DisplayY, n.Radius,
		ColorStop{0, HSLA(n.Hue, 70, 50, n.Opacity)},
		ColorStop{0.5, HSLA(n.Hue+20, 60, 40, n.Opacity*0.5)},
		ColorStop{1, HSLA(n.Hue+40, 50, 30, 0)},
	)
}
