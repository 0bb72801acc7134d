package starfield

import "math"

// Point is a client-space coordinate from a pointer or touch event.
type Point struct {
	X, Y float64
}

// PointerState is the input offset from the viewport centre. Event handlers
// write only the target; Smooth moves the current offset toward it once per
// frame.
type PointerState struct {
	CurrentX, CurrentY float64
	TargetX, TargetY   float64
}

// PointerMove aims at a pointer position in client coordinates.
func (p *PointerState) PointerMove(clientX, clientY float64, vp Viewport) {
	cx, cy := vp.Center()
	p.TargetX = clientX - cx
	p.TargetY = clientY - cy
}

// Touch aims at the first touch point. It reports false, leaving the target
// alone, when there are no touches.
func (p *PointerState) Touch(touches []Point, vp Viewport) bool {
	if len(touches) == 0 {
		return false
	}
	p.PointerMove(touches[0].X, touches[0].Y, vp)
	return true
}

// Orientation aims from device tilt: gamma is the left-right tilt and beta
// the front-back tilt, both in degrees.
func (p *PointerState) Orientation(gamma, beta float64, vp Viewport) {
	halfW, halfH := vp.Center()
	x := gamma / TiltRange * halfW * TiltSensitivity
	y := (beta - TiltNeutralPitch) / TiltRange * halfH * TiltSensitivity
	p.TargetX = math.Max(-halfW, math.Min(halfW, x))
	p.TargetY = math.Max(-halfH, math.Min(halfH, y))
}

// Smooth advances the current offset by Ease of the remaining distance.
func (p *PointerState) Smooth() {
	p.CurrentX += (p.TargetX - p.CurrentX) * Ease
	p.CurrentY += (p.TargetY - p.CurrentY) * Ease
}

// Offset returns the smoothed offset.
func (p *PointerState) Offset() (x, y float64) {
	return p.CurrentX, p.CurrentY
}
