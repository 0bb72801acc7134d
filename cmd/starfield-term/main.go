package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/starfield/common"
	"github.com/simukka/starfield/starfield"
	"github.com/simukka/starfield/terminal"
)

func main() {
	var (
		seed    = flag.Uint("seed", 0, "sky seed (0 picks one from the clock)")
		debug   = flag.Bool("debug", false, "enable debug logging")
		logPath = flag.String("log", "", "write log output to this file")
	)
	flag.Parse()

	// The screen owns stdout, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open log:", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	starfield.EnableDebug = *debug

	s := uint32(*seed)
	if s == 0 {
		s = common.TimeSeed(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen init:", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	terminal.New(screen, s).Run()
	screen.Fini()
}
