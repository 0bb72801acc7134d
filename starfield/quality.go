package starfield

import "regexp"

// Environment is what the host reports about the device at startup.
type Environment struct {
	Width, Height float64
	UserAgent     string
	// Cores is the reported logical core count, 0 when unknown.
	Cores int
	// PixelRatio is the live device pixel ratio, 0 when unknown.
	PixelRatio float64
}

// QualityConfig is the fidelity budget chosen once at startup.
type QualityConfig struct {
	StarCount        int
	NebulaCount      int
	MaxShootingStars int
	// ShootingStarProbability is the independent per-frame chance of
	// launching a shooting star.
	ShootingStarProbability float64
	// SimpleGlow draws stars as flat circles instead of gradients.
	SimpleGlow     bool
	LowPerformance bool
}

var (
	// FullQuality is used on desktops.
	FullQuality = QualityConfig{
		StarCount:               500,
		NebulaCount:             5,
		MaxShootingStars:        3,
		ShootingStarProbability: 0.005,
	}
	// LowQuality is used on small screens, phones and machines with few cores.
	LowQuality = QualityConfig{
		StarCount:               200,
		NebulaCount:             3,
		MaxShootingStars:        2,
		ShootingStarProbability: 0.003,
		SimpleGlow:              true,
		LowPerformance:          true,
	}
)

var mobileAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobile reports whether env looks like a phone or tablet: a mobile user
// agent or a narrow viewport.
func IsMobile(env Environment) bool {
	return mobileAgent.MatchString(env.UserAgent) || env.Width <= LowPerfMaxWidth
}

// IsLowPerformance reports whether env should get the reduced profile.
func IsLowPerformance(env Environment) bool {
	return IsMobile(env) || (env.Cores > 0 && env.Cores <= LowPerfMaxCores)
}

// Profile derives the quality configuration for env.
func Profile(env Environment) QualityConfig {
	if IsLowPerformance(env) {
		return LowQuality
	}
	return FullQuality
}
