package canvas

import "github.com/gopherjs/gopherjs/js"

// AnimationFrames schedules frames with requestAnimationFrame.
type AnimationFrames struct {
	FrameID int
}

// RequestFrame implements starfield.FrameScheduler.
func (a *AnimationFrames) RequestFrame(fn func()) {
	a.FrameID = js.Global.Call("requestAnimationFrame", func(currentTime float64) {
		fn()
	}).Int()
}
