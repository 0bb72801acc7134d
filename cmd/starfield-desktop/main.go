package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/starfield/common"
	"github.com/simukka/starfield/desktop"
	"github.com/simukka/starfield/starfield"
)

func main() {
	var (
		seed   = flag.Uint("seed", 0, "sky seed (0 picks one from the clock)")
		width  = flag.Int("width", 1280, "initial window width")
		height = flag.Int("height", 720, "initial window height")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	starfield.EnableDebug = *debug
	s := uint32(*seed)
	if s == 0 {
		s = common.TimeSeed(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Starfield")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	g := desktop.NewGame(desktop.Environment(*width, *height), s)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
