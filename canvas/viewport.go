package canvas

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starfield/common"
	"github.com/simukka/starfield/starfield"
)

// ReadEnvironment queries the window and navigator for device profiling.
func ReadEnvironment() starfield.Environment {
	window := js.Global
	navigator := window.Get("navigator")

	env := starfield.Environment{
		Width:      window.Get("innerWidth").Float(),
		Height:     window.Get("innerHeight").Float(),
		UserAgent:  navigator.Get("userAgent").String(),
		PixelRatio: window.Get("devicePixelRatio").Float(),
	}
	if cores := navigator.Get("hardwareConcurrency"); cores != nil && cores != js.Undefined {
		env.Cores = cores.Int()
	}
	return env
}

// CurrentViewport reads the window size and live pixel ratio.
func CurrentViewport(q starfield.QualityConfig) starfield.Viewport {
	window := js.Global
	return starfield.NewViewport(
		window.Get("innerWidth").Float(),
		window.Get("innerHeight").Float(),
		window.Get("devicePixelRatio").Float(),
		q,
	)
}

// ApplyViewport sizes the backing store to logical×ratio, keeps the CSS
// size at the logical size and scales the context so drawing code works in
// logical pixels.
func ApplyViewport(canvas, ctx *js.Object, vp starfield.Viewport) {
	// Reset first or the scale compounds across resizes.
	ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)

	w, h := vp.BackingSize()
	canvas.Set("width", w)
	canvas.Set("height", h)

	style := canvas.Get("style")
	style.Set("width", strconv.FormatFloat(vp.Width, 'f', -1, 64)+"px")
	style.Set("height", strconv.FormatFloat(vp.Height, 'f', -1, 64)+"px")

	ctx.Call("scale", vp.PixelRatio, vp.PixelRatio)
}

// NowSeed seeds the sky from the page clock.
func NowSeed() uint32 {
	return common.TimeSeed(int64(js.Global.Get("Date").Call("now").Float()))
}
