package starfield

import "time"

// Input tuning
const (
	// Ease is the fraction of the remaining distance the smoothed pointer
	// covers each frame.
	Ease = 0.05
	// TiltSensitivity scales device tilt into pointer offset.
	TiltSensitivity = 3.0
	// TiltNeutralPitch is the front-back tilt (degrees) treated as centred;
	// a phone held in the hand rests around 45°.
	TiltNeutralPitch = 45.0
	// TiltRange is the tilt angle (degrees) that maps to half the viewport.
	TiltRange = 45.0
)

// Star constants
const (
	// DepthRange is the exclusive upper bound of star depth.
	DepthRange = 1000.0
	// StarParallaxScale damps star parallax relative to nebulae.
	StarParallaxScale = 0.5
	// OffscreenMargin is how far past the viewport edge a star may drift
	// before it is respawned.
	OffscreenMargin = 100.0
	// StarAlphaDepth and StarSizeDepth dim and shrink deeper stars.
	StarAlphaDepth = 1200.0
	StarSizeDepth  = 1500.0
	// maxRespawnAttempts bounds the rejection sampling in Star.Reset.
	maxRespawnAttempts = 16
)

// Shooting star constants
const (
	ShootingStarFade       = 0.02
	ShootingStarLineWidth  = 2.0
	ShootingStarHeadRadius = 2.0
	ShootingStarSpread     = 0.3 // total angle jitter in radians
)

// Device profiling thresholds
const (
	LowPerfMaxWidth    = 768
	LowPerfMaxCores    = 4
	MaxPixelRatio      = 2.0
	LowPerfPixelRatio  = 1.0
	ResizeDebounce     = 150 * time.Millisecond
	HintDelay          = 100 * time.Millisecond
	HintDuration       = 5 * time.Second
	HintFadeOut        = 500 * time.Millisecond
	DefaultFrameRate   = 60
	defaultDevicePixel = 1.0
)
