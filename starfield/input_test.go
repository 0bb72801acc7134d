package starfield

import (
	"math"
	"testing"
)

func TestPointerState_SmoothFollowsGeometricDecay(t *testing.T) {
	p := PointerState{TargetX: 300, TargetY: -120}

	for n := 1; n <= 60; n++ {
		p.Smooth()
		decay := 1 - math.Pow(1-Ease, float64(n))
		if math.Abs(p.CurrentX-300*decay) > 1e-9 || math.Abs(p.CurrentY+120*decay) > 1e-9 {
			t.Fatalf("Frame %d: expected (%f, %f), got (%f, %f)", n, 300*decay, -120*decay, p.CurrentX, p.CurrentY)
		}
	}

	// 0.95^60 ≈ 0.046, so within 5% of the target after one second at 60 FPS
	if math.Abs(p.CurrentX-300) > 300*0.05 {
		t.Errorf("Expected X near 300 after 60 frames, got %f", p.CurrentX)
	}
}

func TestPointerState_SmoothNeverOvershoots(t *testing.T) {
	p := PointerState{TargetX: 10}

	for i := 0; i < 1000; i++ {
		p.Smooth()
		if p.CurrentX > 10 {
			t.Fatalf("Expected no overshoot, got %f", p.CurrentX)
		}
	}
}

func TestPointerState_PointerMoveIsRelativeToCentre(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 600, PixelRatio: 1}
	p := PointerState{}

	p.PointerMove(700, 100, vp)

	if p.TargetX != 200 || p.TargetY != -200 {
		t.Errorf("Expected target (200, -200), got (%f, %f)", p.TargetX, p.TargetY)
	}
	if p.CurrentX != 0 || p.CurrentY != 0 {
		t.Error("Expected input events not to touch the current offset")
	}
}

func TestPointerState_TouchUsesFirstPoint(t *testing.T) {
	vp := Viewport{Width: 400, Height: 400, PixelRatio: 1}
	p := PointerState{}

	if !p.Touch([]Point{{X: 300, Y: 250}, {X: 0, Y: 0}}, vp) {
		t.Fatal("Expected touch with points to apply")
	}
	if p.TargetX != 100 || p.TargetY != 50 {
		t.Errorf("Expected target (100, 50), got (%f, %f)", p.TargetX, p.TargetY)
	}
}

func TestPointerState_TouchWithoutPointsIsNoop(t *testing.T) {
	vp := Viewport{Width: 400, Height: 400, PixelRatio: 1}
	p := PointerState{TargetX: 7, TargetY: 8}

	if p.Touch(nil, vp) {
		t.Error("Expected empty touch list to report false")
	}
	if p.TargetX != 7 || p.TargetY != 8 {
		t.Errorf("Expected target unchanged, got (%f, %f)", p.TargetX, p.TargetY)
	}
}

func TestPointerState_Orientation(t *testing.T) {
	vp := Viewport{Width: 400, Height: 800, PixelRatio: 1}

	tests := []struct {
		name        string
		gamma, beta float64
		wantX       float64
		wantY       float64
	}{
		{"Neutral hold", 0, 45, 0, 0},
		{"Slight right tilt", 5, 45, 5.0 / 45 * 200 * 3, 0},
		{"Slight forward tilt", 0, 50, 0, 5.0 / 45 * 400 * 3},
		{"Clamped right", 90, 45, 200, 0},
		{"Clamped back", 0, -90, 0, -400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PointerState{}
			p.Orientation(tt.gamma, tt.beta, vp)
			if math.Abs(p.TargetX-tt.wantX) > 1e-9 || math.Abs(p.TargetY-tt.wantY) > 1e-9 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.wantX, tt.wantY, p.TargetX, p.TargetY)
			}
		})
	}
}
