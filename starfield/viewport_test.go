package starfield

import (
	"testing"
	"time"
)

func TestClampPixelRatio(t *testing.T) {
	tests := []struct {
		name    string
		device  float64
		lowPerf bool
		want    float64
	}{
		{"Retina desktop", 2, false, 2},
		{"Dense phone capped at 2", 3, false, 2},
		{"Low-end capped at 1", 3, true, 1},
		{"Never above device", 1.5, false, 1.5},
		{"Unknown ratio", 0, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPixelRatio(tt.device, tt.lowPerf); got != tt.want {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestViewport_BackingSize(t *testing.T) {
	vp := NewViewport(800, 600, 3, FullQuality)

	w, h := vp.BackingSize()
	if w != 1600 || h != 1200 {
		t.Errorf("Expected backing store 1600x1200, got %dx%d", w, h)
	}

	low := NewViewport(800, 600, 3, LowQuality)
	w, h = low.BackingSize()
	if w != 800 || h != 600 {
		t.Errorf("Expected backing store 800x600 on low profile, got %dx%d", w, h)
	}
}

func TestViewport_Contains(t *testing.T) {
	vp := Viewport{Width: 100, Height: 50, PixelRatio: 1}

	if !vp.Contains(-100, 150, 100) {
		t.Error("Expected point on the margin edge to be contained")
	}
	if vp.Contains(-100.5, 10, 100) {
		t.Error("Expected point past the margin not to be contained")
	}
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(ResizeDebounce)
	start := time.Unix(0, 0)

	for i := 0; i < 10; i++ {
		d.Trigger(start.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	last := start.Add(450 * time.Millisecond)

	if d.Ready(last.Add(149 * time.Millisecond)) {
		t.Error("Expected debouncer to wait for the quiet interval")
	}
	if !d.Ready(last.Add(150 * time.Millisecond)) {
		t.Error("Expected debouncer to fire after the quiet interval")
	}
	if d.Ready(last.Add(time.Second)) {
		t.Error("Expected debouncer to fire once per burst")
	}
	if d.Pending() {
		t.Error("Expected nothing pending after firing")
	}
}
