package canvas

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starfield/starfield"
)

// Host binds a Field to a <canvas> element and the surrounding page.
type Host struct {
	Field   *starfield.Field
	Canvas  *js.Object
	Ctx     *js.Object
	Surface *Surface
	Frames  *AnimationFrames

	Env         starfield.Environment
	Mobile      bool
	GyroEnabled bool

	resizeTimeout *js.Object
}

// New profiles the device, sizes the canvas and builds the field.
func New(canvas *js.Object, seed uint32) *Host {
	env := ReadEnvironment()
	quality := starfield.Profile(env)
	ctx := canvas.Call("getContext", "2d")

	h := &Host{
		Canvas:  canvas,
		Ctx:     ctx,
		Surface: &Surface{Ctx: ctx},
		Frames:  &AnimationFrames{},
		Env:     env,
		Mobile:  starfield.IsMobile(env),
	}

	vp := CurrentViewport(quality)
	ApplyViewport(canvas, ctx, vp)
	h.Field = starfield.NewField(quality, vp, seed)

	starfield.Debug("Profile:", quality.StarCount, "stars, low performance:", quality.LowPerformance, "mobile:", h.Mobile)
	return h
}

// Start wires input and page hooks, paints the background and runs the
// animation loop until the page goes away.
func (h *Host) Start() {
	h.SetupInputHandlers()
	h.SetupResizeHandler()
	h.ScheduleHint()

	h.Field.Clear(h.Surface)
	h.Field.Run(h.Frames, h.Surface)
}

// SetupResizeHandler coalesces window resizes with a trailing debounce and
// then recomputes the pixel ratio, backing store and field viewport.
func (h *Host) SetupResizeHandler() {
	js.Global.Call("addEventListener", "resize", func() {
		if h.resizeTimeout != nil {
			js.Global.Call("clearTimeout", h.resizeTimeout)
		}
		h.resizeTimeout = js.Global.Call("setTimeout", func() {
			h.resizeTimeout = nil
			vp := CurrentViewport(h.Field.Quality)
			ApplyViewport(h.Canvas, h.Ctx, vp)
			h.Field.Resize(vp)
		}, starfield.ResizeDebounce.Milliseconds())
	})
}

// ScheduleHint fills the hint text once orientation detection has had a
// moment to settle, then fades the overlay out.
func (h *Host) ScheduleHint() {
	document := js.Global.Get("document")

	js.Global.Call("setTimeout", func() {
		hint := document.Call("querySelector", ".hint-text")
		if hint == nil || hint == js.Undefined {
			return
		}
		hint.Set("textContent", starfield.HintText(h.Mobile, h.GyroEnabled))
	}, starfield.HintDelay.Milliseconds())

	js.Global.Call("setTimeout", func() {
		overlay := document.Call("querySelector", ".overlay")
		if overlay == nil || overlay == js.Undefined {
			return
		}
		overlay.Get("style").Set("opacity", "0")
		js.Global.Call("setTimeout", func() {
			overlay.Get("style").Set("display", "none")
		}, starfield.HintFadeOut.Milliseconds())
	}, starfield.HintDuration.Milliseconds())
}
