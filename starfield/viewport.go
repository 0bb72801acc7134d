package starfield

import (
	"math"
	"time"
)

// Viewport is the logical drawing area and the pixel ratio of its backing
// store.
type Viewport struct {
	Width, Height float64
	PixelRatio    float64
}

// NewViewport builds a viewport for a window of w×h logical pixels.
func NewViewport(w, h, devicePixelRatio float64, q QualityConfig) Viewport {
	return Viewport{
		Width:      w,
		Height:     h,
		PixelRatio: ClampPixelRatio(devicePixelRatio, q.LowPerformance),
	}
}

// ClampPixelRatio caps the device pixel ratio at 1 on low-end devices and
// 2 elsewhere. An unknown ratio counts as 1.
func ClampPixelRatio(device float64, lowPerf bool) float64 {
	if device <= 0 || math.IsNaN(device) {
		device = defaultDevicePixel
	}
	limit := MaxPixelRatio
	if lowPerf {
		limit = LowPerfPixelRatio
	}
	return math.Min(device, limit)
}

// BackingSize is the pixel size of the backing store.
func (v Viewport) BackingSize() (w, h int) {
	return int(v.Width * v.PixelRatio), int(v.Height * v.PixelRatio)
}

// Center returns the midpoint of the logical area.
func (v Viewport) Center() (x, y float64) {
	return v.Width / 2, v.Height / 2
}

// Contains reports whether (x, y) lies within margin of the logical area.
func (v Viewport) Contains(x, y, margin float64) bool {
	return x >= -margin && x <= v.Width+margin &&
		y >= -margin && y <= v.Height+margin
}

// Debouncer coalesces a burst of triggers into one action that fires once
// Delay has passed since the last trigger.
type Debouncer struct {
	Delay    time.Duration
	deadline time.Time
	pending  bool
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay}
}

// Trigger records an event at now, pushing the deadline back.
func (d *Debouncer) Trigger(now time.Time) {
	d.pending = true
	d.deadline = now.Add(d.Delay)
}

// Ready reports, once per burst, that the quiet interval has elapsed.
func (d *Debouncer) Ready(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a burst is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.pending
}
