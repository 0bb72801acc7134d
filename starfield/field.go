package starfield

import "github.com/simukka/starfield/common"

// Field holds the complete starfield state for one page session.
type Field struct {
	Quality  QualityConfig
	Viewport Viewport
	Pointer  PointerState

	// Entity pools, fixed in size for the life of the field
	Stars         []*Star
	Nebulae       []*Nebula
	ShootingStars *ShootingStarPool

	RNG Rand

	// Frames counts completed frames.
	Frames uint64
}

// NewField builds every entity up front for the given quality and viewport.
func NewField(q QualityConfig, vp Viewport, seed uint32) *Field {
	return NewFieldWithRand(q, vp, common.NewSeededRNG(seed))
}

// NewFieldWithRand is NewField with a caller-supplied random source.
func NewFieldWithRand(q QualityConfig, vp Viewport, rng Rand) *Field {
	f := &Field{
		Quality:       q,
		Viewport:      vp,
		Stars:         make([]*Star, 0, q.StarCount),
		Nebulae:       make([]*Nebula, 0, q.NebulaCount),
		ShootingStars: NewShootingStarPool(q.MaxShootingStars),
		RNG:           rng,
	}
	f.populate()
	Debug("Field ready:", q.StarCount, "stars,", q.NebulaCount, "nebulae,", q.MaxShootingStars, "shooting stars")
	return f
}

// populate draws every star and nebula from the RNG and grounds any
// shooting stars in flight.
func (f *Field) populate() {
	f.Stars = f.Stars[:0]
	for i := 0; i < f.Quality.StarCount; i++ {
		f.Stars = append(f.Stars, NewStar(f.RNG, f.Viewport))
	}
	f.Nebulae = f.Nebulae[:0]
	for i := 0; i < f.Quality.NebulaCount; i++ {
		f.Nebulae = append(f.Nebulae, NewNebula(f.RNG, f.Viewport))
	}
	f.ShootingStars.Clear()
}

// Resize swaps in a new viewport. Star offsets stay relative to the centre,
// so the sky recentres; stars left outside the margin respawn next frame.
// Shooting stars in flight are retired since their paths were laid out for
// the old bounds.
func (f *Field) Resize(vp Viewport) {
	Debug("Resize:", vp.Width, "x", vp.Height, "@", vp.PixelRatio)
	f.Viewport = vp
	f.ShootingStars.Clear()
}

// Replay rewinds the RNG to its seed and rebuilds the sky. On an unchanged
// viewport this reproduces the sky the field started with. It reports false
// when the RNG cannot be rewound.
func (f *Field) Replay() bool {
	r, ok := f.RNG.(Reseeder)
	if !ok {
		return false
	}
	r.Reset()
	f.populate()
	Debug("Replay sky, seed", r.Seed())
	return true
}

// Reseed restarts the RNG from seed and rebuilds the sky.
func (f *Field) Reseed(seed uint32) bool {
	r, ok := f.RNG.(Reseeder)
	if !ok {
		return false
	}
	r.SetSeed(seed)
	f.populate()
	Debug("New sky, seed", r.Seed())
	return true
}

// Seed reports the seed the sky was generated from, if the RNG has one.
func (f *Field) Seed() (uint32, bool) {
	r, ok := f.RNG.(Reseeder)
	if !ok {
		return 0, false
	}
	return r.Seed(), true
}

// TriggerShootingStar rolls the per-frame launch chance and, on success,
// launches the first idle shooting star. A launch with no idle star is
// dropped.
func (f *Field) TriggerShootingStar() *ShootingStar {
	if f.RNG.Random() >= f.Quality.ShootingStarProbability {
		return nil
	}
	return f.LaunchShootingStar()
}

// LaunchShootingStar launches the first idle shooting star unconditionally.
func (f *Field) LaunchShootingStar() *ShootingStar {
	s := f.ShootingStars.Acquire()
	if s == nil {
		return nil
	}
	s.Reset(f.RNG, f.Viewport)
	return s
}
