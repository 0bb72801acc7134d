package desktop

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/simukka/starfield/common"
	"github.com/simukka/starfield/starfield"
	"golang.org/x/image/font/basicfont"
)

const hintScale = 2

// Game runs a starfield in an ebiten window.
type Game struct {
	Field *starfield.Field

	surface *Surface
	resize  *starfield.Debouncer
	cleared bool

	// Most recent window size reported by Layout
	outsideW, outsideH float64

	lastCursorX, lastCursorY int
	touchIDs                 []ebiten.TouchID
	keys                     []ebiten.Key
	touch                    ebiten.TouchID
	touching                 bool

	hint      string
	hintFace  text.Face
	startedAt time.Time
}

// Environment describes the local machine for device profiling.
func Environment(width, height int) starfield.Environment {
	return starfield.Environment{
		Width:      float64(width),
		Height:     float64(height),
		UserAgent:  runtime.GOOS + "/" + runtime.GOARCH,
		Cores:      runtime.NumCPU(),
		PixelRatio: deviceScaleFactor(),
	}
}

func deviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// NewGame builds the field for env.
func NewGame(env starfield.Environment, seed uint32) *Game {
	quality := starfield.Profile(env)
	vp := starfield.NewViewport(env.Width, env.Height, env.PixelRatio, quality)

	return &Game{
		Field:     starfield.NewField(quality, vp, seed),
		surface:   &Surface{Scale: vp.PixelRatio},
		resize:    starfield.NewDebouncer(starfield.ResizeDebounce),
		outsideW:  env.Width,
		outsideH:  env.Height,
		hint:      starfield.HintText(starfield.IsMobile(env), false),
		hintFace:  text.NewGoXFace(basicfont.Face7x13),
		startedAt: time.Now(),
	}
}

// Update reads input and applies a settled resize.
func (g *Game) Update() error {
	vp := g.Field.Viewport

	// Input positions arrive in backing-store pixels.
	x, y := ebiten.CursorPosition()
	if x != g.lastCursorX || y != g.lastCursorY {
		g.lastCursorX, g.lastCursorY = x, y
		g.Field.Pointer.PointerMove(float64(x)/vp.PixelRatio, float64(y)/vp.PixelRatio, vp)
	}

	if g.touching && inpututil.IsTouchJustReleased(g.touch) {
		g.touching = false
	}
	if !g.touching {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) > 0 {
			g.touch, g.touching = g.touchIDs[0], true
		}
	}
	if g.touching {
		tx, ty := ebiten.TouchPosition(g.touch)
		g.Field.Pointer.Touch([]starfield.Point{{X: float64(tx) / vp.PixelRatio, Y: float64(ty) / vp.PixelRatio}}, vp)
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	now := time.Now()
	for _, k := range g.keys {
		g.handleKey(k, now)
	}

	g.advance(now)
	return nil
}

// handleKey applies the sky controls: R replays the current sky, N starts
// a new one.
func (g *Game) handleKey(key ebiten.Key, now time.Time) {
	switch key {
	case ebiten.KeyR:
		g.Field.Replay()
	case ebiten.KeyN:
		g.Field.Reseed(common.TimeSeed(now.UnixNano()))
	}
}

// advance applies a settled resize and steps the simulation. It runs at the
// fixed tick rate, independent of how often Draw is called.
func (g *Game) advance(now time.Time) {
	if g.resize.Ready(now) {
		g.applyResize()
	}
	g.Field.Step()
}

func (g *Game) applyResize() {
	vp := starfield.NewViewport(g.outsideW, g.outsideH, deviceScaleFactor(), g.Field.Quality)
	g.Field.Resize(vp)
	g.surface.Scale = vp.PixelRatio
	// The screen image is reallocated at the new size.
	g.cleared = false
}

// Draw renders the current state. The screen is not cleared between
// frames, so the field's translucent fill leaves trails.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Dst = screen
	if !g.cleared {
		g.Field.Clear(g.surface)
		g.cleared = true
	}
	g.Field.Render(g.surface)
	g.drawHint(screen)
}

func (g *Game) drawHint(screen *ebiten.Image) {
	alpha := HintAlpha(time.Since(g.startedAt))
	if alpha <= 0 {
		return
	}

	scale := hintScale * g.Field.Viewport.PixelRatio
	w, h := g.Field.Viewport.BackingSize()
	adv := text.Advance(g.hint, g.hintFace) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(w)-adv)/2, float64(h)*0.85)
	op.ColorScale.ScaleAlpha(float32(alpha * 0.7))
	text.Draw(screen, g.hint, g.hintFace, op)
}

// HintAlpha is fully opaque for HintDuration, then fades out over
// HintFadeOut.
func HintAlpha(elapsed time.Duration) float64 {
	if elapsed < starfield.HintDuration {
		return 1
	}
	fade := elapsed - starfield.HintDuration
	if fade >= starfield.HintFadeOut {
		return 0
	}
	return 1 - float64(fade)/float64(starfield.HintFadeOut)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF reports the backing store size. Window size changes are only
// recorded here and applied once the resize debounce settles.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.resize.Trigger(time.Now())
	}
	w, h := g.Field.Viewport.BackingSize()
	return float64(w), float64(h)
}
