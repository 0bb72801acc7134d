package starfield

import "testing"

func TestProfile_NarrowViewportIsLowPerformance(t *testing.T) {
	agents := []string{"", "Mozilla/5.0 (X11; Linux x86_64)", "Mozilla/5.0 (iPhone)"}
	for _, ua := range agents {
		for _, cores := range []int{0, 2, 16} {
			q := Profile(Environment{Width: 400, Height: 800, UserAgent: ua, Cores: cores})
			if q.StarCount != 200 {
				t.Errorf("Expected 200 stars for width 400, ua %q, cores %d, got %d", ua, cores, q.StarCount)
			}
		}
	}
}

func TestProfile_DesktopIsFullQuality(t *testing.T) {
	q := Profile(Environment{
		Width:     1920,
		Height:    1080,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Cores:     8,
	})

	if q != FullQuality {
		t.Errorf("Expected FullQuality, got %+v", q)
	}
	if q.StarCount != 500 {
		t.Errorf("Expected 500 stars, got %d", q.StarCount)
	}
}

func TestProfile_Classification(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		low  bool
	}{
		{"Width at threshold", Environment{Width: 768, Cores: 8}, true},
		{"Width above threshold", Environment{Width: 769, Cores: 8}, false},
		{"Android agent", Environment{Width: 1920, Cores: 8, UserAgent: "Mozilla/5.0 (Linux; Android 14)"}, true},
		{"Agent match is case-insensitive", Environment{Width: 1920, Cores: 8, UserAgent: "OPERA MINI"}, true},
		{"Four cores", Environment{Width: 1920, Cores: 4}, true},
		{"Unknown core count", Environment{Width: 1920, Cores: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Profile(tt.env)
			if q.LowPerformance != tt.low {
				t.Errorf("Expected LowPerformance %v, got %v", tt.low, q.LowPerformance)
			}
		})
	}
}

func TestLowQuality_Values(t *testing.T) {
	q := LowQuality

	if q.NebulaCount != 3 || q.MaxShootingStars != 2 {
		t.Errorf("Expected 3 nebulae and 2 shooting stars, got %d and %d", q.NebulaCount, q.MaxShootingStars)
	}
	if q.ShootingStarProbability != 0.003 {
		t.Errorf("Expected probability 0.003, got %f", q.ShootingStarProbability)
	}
	if !q.SimpleGlow {
		t.Error("Expected SimpleGlow on the low profile")
	}
}

func TestIsMobile(t *testing.T) {
	if IsMobile(Environment{Width: 1920, UserAgent: "Mozilla/5.0 (Macintosh)"}) {
		t.Error("Expected a wide desktop not to be mobile")
	}
	if !IsMobile(Environment{Width: 1024, UserAgent: "Mozilla/5.0 (iPad; CPU OS 17_0)"}) {
		t.Error("Expected an iPad to be mobile")
	}
}

func TestHintText(t *testing.T) {
	if got := HintText(false, true); got != Theme.HintMouse {
		t.Errorf("Expected mouse hint on desktop, got %q", got)
	}
	if got := HintText(true, true); got != Theme.HintTilt {
		t.Errorf("Expected tilt hint, got %q", got)
	}
	if got := HintText(true, false); got != Theme.HintTouch {
		t.Errorf("Expected touch hint, got %q", got)
	}
}
