//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starfield/canvas"
	"github.com/simukka/starfield/starfield"
)

func main() {
	canvas.UseConsole()

	// Get the canvas element
	el := js.Global.Get("document").Call("getElementById", "starfield")
	if el == nil || el == js.Undefined {
		starfield.DebugError("canvas element #starfield not found")
		return
	}

	canvas.New(el, canvas.NowSeed()).Start()

	select {}
}
