package starfield

// Theme holds the colours every backend paints with.
var Theme = struct {
	// Background is painted once, opaque, before the first frame.
	Background Color
	// Trail is painted over the whole surface every frame so moving
	// objects leave a short fading smear instead of a hard clear.
	Trail Color

	ShootingStar Color

	// Star and nebula hues are drawn from [HueMin, HueMin+HueSpan).
	HueMin  float64
	HueSpan float64

	// Hint text strings
	HintTilt  string
	HintTouch string
	HintMouse string
}{
	Background: RGBA(10, 10, 26, 1),
	Trail:      RGBA(10, 10, 26, 0.3),

	ShootingStar: RGBA(255, 255, 255, 1),

	// Blue to violet
	HueMin:  200,
	HueSpan: 60,

	HintTilt:  "Tilt your device to explore the stars",
	HintTouch: "Swipe to explore the stars",
	HintMouse: "Move the mouse to explore the stars",
}

// HintText picks the hint for the input sources that ended up active.
func HintText(mobile, gyro bool) string {
	if !mobile {
		return Theme.HintMouse
	}
	if gyro {
		return Theme.HintTilt
	}
	return Theme.HintTouch
}
