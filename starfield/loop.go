package starfield

// FrameScheduler defers a callback to the host's next display frame.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// Run draws a frame and asks the scheduler for the next one, forever. The
// loop only yields to the host between frames.
func (f *Field) Run(sched FrameScheduler, sf Surface) {
	var tick func()
	tick = func() {
		f.Frame(sf)
		sched.RequestFrame(tick)
	}
	tick()
}

// Clear paints the opaque background. Call once before the first frame.
func (f *Field) Clear(sf Surface) {
	sf.FillRect(0, 0, f.Viewport.Width, f.Viewport.Height, Theme.Background)
}

// Frame advances and draws one frame. Drawing follows a fixed order: trail
// fill, nebulae, stars, shooting stars. Updates never read the surface, so
// this is the same as Step followed by Render.
func (f *Field) Frame(sf Surface) {
	f.Step()
	f.Render(sf)
}

// Step advances the simulation one frame: pointer smoothing, nebulae,
// stars, the shooting-star roll, then shooting stars.
func (f *Field) Step() {
	vp := f.Viewport

	f.Pointer.Smooth()
	offX, offY := f.Pointer.Offset()

	for _, n := range f.Nebulae {
		n.Update(offX, offY)
	}
	for _, s := range f.Stars {
		s.Update(offX, offY, vp, f.RNG)
	}

	f.TriggerShootingStar()
	f.ShootingStars.ForEach(func(s *ShootingStar) {
		s.Update(vp)
	})

	f.Frames++
}

// Render draws the current state without advancing it.
func (f *Field) Render(sf Surface) {
	vp := f.Viewport

	sf.FillRect(0, 0, vp.Width, vp.Height, Theme.Trail)

	for _, n := range f.Nebulae {
		n.Draw(sf)
	}

	simple := f.Quality.SimpleGlow
	for _, s := range f.Stars {
		s.Draw(sf, simple)
	}

	f.ShootingStars.ForEach(func(s *ShootingStar) {
		s.Draw(sf)
	})
}
