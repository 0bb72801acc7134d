package starfield

import "math"

// ShootingStar streaks down and to the right while fading out. Inactive
// stars are skipped entirely until the trigger resets them.
type ShootingStar struct {
	X, Y    float64
	Length  float64
	Speed   float64
	Angle   float64
	Opacity float64
	Active  bool
}

// Reset launches the star from a random point in the upper half of the
// viewport.
func (s *ShootingStar) Reset(rng Rand, vp Viewport) {
	s.X = rng.Random() * vp.Width
	s.Y = rng.Random() * vp.Height * 0.5
	s.Length = rng.RandomFloat(50, 150)
	s.Speed = rng.RandomFloat(10, 25)
	s.Angle = math.Pi/4 + (rng.Random()-0.5)*ShootingStarSpread
	s.Opacity = 1
	s.Active = true
}

// Update moves an active star one frame and retires it once it has faded
// out or crossed the right or bottom edge.
func (s *ShootingStar) Update(vp Viewport) {
	if !s.Active {
		return
	}

	s.X += math.Cos(s.Angle) * s.Speed
	s.Y += math.Sin(s.Angle) * s.Speed
	s.Opacity -= ShootingStarFade

	if s.Opacity <= 0 || s.X > vp.Width || s.Y > vp.Height {
		s.Active = false
	}
}

// Tail returns the end of the streak, Length behind the head.
func (s *ShootingStar) Tail() (x, y float64) {
	return s.X - math.Cos(s.Angle)*s.Length, s.Y - math.Sin(s.Angle)*s.Length
}

// Draw renders the streak and its head.
func (s *ShootingStar) Draw(sf Surface) {
	if !s.Active {
		return
	}

	tailX, tailY := s.Tail()
	head := Theme.ShootingStar.WithAlpha(s.Opacity)
	sf.StrokeLinearGradient(tailX, tailY, s.X, s.Y, ShootingStarLineWidth,
		ColorStop{0, Theme.ShootingStar.WithAlpha(0)},
		ColorStop{1, head},
	)
	sf.FillCircle(s.X, s.Y, ShootingStarHeadRadius, head)
}
