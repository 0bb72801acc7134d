package canvas

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/starfield/starfield"
)

// UseConsole routes starfield logging to the browser console. Levels map
// directly onto console.log, console.warn and console.error.
func UseConsole() {
	starfield.LogSink = func(level string, args ...interface{}) {
		js.Global.Get("console").Call(level, args...)
	}
}
