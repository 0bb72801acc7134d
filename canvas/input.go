package canvas

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starfield/starfield"
)

// TouchPoints returns the client position of the first touch of a touch
// event, or nil when the event carries none.
func TouchPoints(event *js.Object) []starfield.Point {
	touches := event.Get("touches")
	if touches == nil || touches == js.Undefined || touches.Length() == 0 {
		return nil
	}
	first := touches.Index(0)
	return []starfield.Point{{
		X: first.Get("clientX").Float(),
		Y: first.Get("clientY").Float(),
	}}
}

// SetupInputHandlers initializes pointer, touch and tilt handlers. Every
// handler only retargets the pointer; the frame loop does the smoothing.
func (h *Host) SetupInputHandlers() {
	pointer := &h.Field.Pointer

	h.Canvas.Call("addEventListener", "mousemove",
		func(event *js.Object) {
			pointer.PointerMove(event.Get("clientX").Float(), event.Get("clientY").Float(), h.Field.Viewport)
		})

	// Swiping over the sky must not scroll the page.
	h.Canvas.Call("addEventListener", "touchmove",
		func(event *js.Object) {
			event.Call("preventDefault")
			pointer.Touch(TouchPoints(event), h.Field.Viewport)
		}, map[string]interface{}{"passive": false})

	h.Canvas.Call("addEventListener", "touchstart",
		func(event *js.Object) {
			pointer.Touch(TouchPoints(event), h.Field.Viewport)
		}, map[string]interface{}{"passive": true})

	if h.Mobile {
		h.setupOrientation()
	}
}

// setupOrientation enables tilt input. Platforms that gate orientation
// behind a permission prompt get asked on the first touch.
func (h *Host) setupOrientation() {
	orientation := js.Global.Get("DeviceOrientationEvent")
	if orientation == nil || orientation == js.Undefined {
		return
	}

	request := orientation.Get("requestPermission")
	if request == nil || request == js.Undefined {
		h.EnableGyroscope()
		return
	}

	js.Global.Get("document").Call("addEventListener", "touchstart",
		func() {
			orientation.Call("requestPermission").
				Call("then", func(response string) {
					if response == "granted" {
						h.EnableGyroscope()
					} else {
						starfield.DebugWarn("Orientation permission:", response)
					}
				}).
				Call("catch", func(err *js.Object) {
					starfield.DebugError("Orientation permission request failed:", err)
				})
		}, map[string]interface{}{"once": true})
}

// EnableGyroscope starts feeding device tilt into the pointer target.
func (h *Host) EnableGyroscope() {
	if h.GyroEnabled {
		return
	}
	h.GyroEnabled = true

	js.Global.Call("addEventListener", "deviceorientation",
		func(event *js.Object) {
			gamma, beta := event.Get("gamma"), event.Get("beta")
			if gamma == nil || beta == nil || gamma == js.Undefined || beta == js.Undefined {
				return
			}
			h.Field.Pointer.Orientation(gamma.Float(), beta.Float(), h.Field.Viewport)
		}, map[string]interface{}{"passive": true})
}
