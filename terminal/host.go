package terminal

import (
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/simukka/starfield/common"
	"github.com/simukka/starfield/starfield"
)

// Host drives a starfield on a tcell screen.
type Host struct {
	Screen  tcell.Screen
	Field   *starfield.Field
	Surface *Surface

	resize    *starfield.Debouncer
	startedAt time.Time
	hint      string
	cleared   bool
}

// Environment describes a terminal of cols x rows cells for device
// profiling. Cells count as CellWidth x CellHeight logical pixels.
func Environment(cols, rows int) starfield.Environment {
	return starfield.Environment{
		Width:      float64(cols) * CellWidth,
		Height:     float64(rows) * CellHeight,
		UserAgent:  "terminal/" + runtime.GOOS,
		Cores:      runtime.NumCPU(),
		PixelRatio: 1,
	}
}

// New builds a host on an initialised screen.
func New(screen tcell.Screen, seed uint32) *Host {
	cols, rows := screen.Size()
	env := Environment(cols, rows)
	quality := starfield.Profile(env)

	h := &Host{
		Screen:    screen,
		Surface:   NewSurface(cols, rows),
		resize:    starfield.NewDebouncer(starfield.ResizeDebounce),
		startedAt: time.Now(),
		hint:      starfield.HintText(false, false),
	}
	vp := starfield.NewViewport(env.Width, env.Height, env.PixelRatio, quality)
	h.Field = starfield.NewField(quality, vp, seed)
	starfield.Debug("terminal", cols, "x", rows, "stars:", quality.StarCount)
	return h
}

func (h *Host) viewport() starfield.Viewport {
	w, hgt := h.Surface.Size()
	return starfield.NewViewport(w, hgt, 1, h.Field.Quality)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.Field.LaunchShootingStar()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			h.Field.Replay()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
			h.Field.Reseed(common.TimeSeed(now.UnixNano()))
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := cellCenter(col, row)
		h.Field.Pointer.PointerMove(x, y, h.Field.Viewport)

	case *tcell.EventResize:
		h.resize.Trigger(now)
	}
	return true
}

// Tick applies a settled resize and renders one frame.
func (h *Host) Tick(now time.Time) {
	if h.resize.Ready(now) {
		h.Screen.Sync()
		cols, rows := h.Screen.Size()
		h.Surface.Resize(cols, rows)
		h.Field.Resize(h.viewport())
		h.cleared = false
		starfield.Debug("resize", cols, "x", rows)
	}

	if !h.cleared {
		h.Field.Clear(h.Surface)
		h.cleared = true
	}
	h.Field.Frame(h.Surface)
	h.Surface.Flush(h.Screen)
	if now.Sub(h.startedAt) < starfield.HintDuration {
		h.drawHint()
	}
	h.Screen.Show()
}

func (h *Host) drawHint() {
	if h.Surface.Rows < 2 {
		return
	}
	row := h.Surface.Rows - 2
	col := (h.Surface.Cols - runewidth.StringWidth(h.hint)) / 2
	if col < 0 {
		col = 0
	}
	style := tcell.StyleDefault.
		Background(rgb{10, 10, 26}.tcell()).
		Foreground(tcell.NewRGBColor(180, 180, 200))
	for _, r := range h.hint {
		h.Screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// Run polls events on a separate goroutine and renders at
// DefaultFrameRate until the user quits.
func (h *Host) Run() {
	ticker := time.NewTicker(time.Second / starfield.DefaultFrameRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go h.pollEvents(events, done)

	for {
		select {
		case ev := <-events:
			if !h.HandleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			h.Tick(now)
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed.
func (h *Host) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := h.Screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
