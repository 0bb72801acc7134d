package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/starfield/starfield"
)

// Logical pixels covered by one terminal cell
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Glyphs by increasing ink
var inkGlyphs = []rune{' ', '.', '·', '+', '*'}

type rgb struct {
	r, g, b float64
}

// over composites src with alpha a on top of c.
func (c rgb) over(src rgb, a float64) rgb {
	return rgb{
		r: c.r + (src.r-c.r)*a,
		g: c.g + (src.g-c.g)*a,
		b: c.b + (src.b-c.b)*a,
	}
}

func (c rgb) tcell() tcell.Color {
	return tcell.NewRGBColor(int32(math.Round(c.r)), int32(math.Round(c.g)), int32(math.Round(c.b)))
}

func split(c starfield.Color) (rgb, float64) {
	n := c.NRGBA()
	return rgb{float64(n.R), float64(n.G), float64(n.B)}, math.Max(0, math.Min(1, c.Alpha))
}

// cell holds a background colour for large fills and an ink level for
// features smaller than the cell, which render as glyphs.
type cell struct {
	bg, fg rgb
	ink    float64
}

// Surface rasterises the starfield onto a grid of terminal cells.
type Surface struct {
	Cols, Rows int
	cells      []cell
}

var _ starfield.Surface = (*Surface)(nil)

// NewSurface creates a surface of cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the grid. Contents are discarded.
func (s *Surface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.Cols, s.Rows = cols, rows
	s.cells = make([]cell, cols*rows)
}

// Size reports the logical pixel size of the grid.
func (s *Surface) Size() (w, h float64) {
	return float64(s.Cols) * CellWidth, float64(s.Rows) * CellHeight
}

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.Cols || row >= s.Rows {
		return nil
	}
	return &s.cells[row*s.Cols+col]
}

// span converts a logical interval into the cell indices whose centres
// fall inside it.
func span(from, to, size float64, limit int) (int, int) {
	lo := int(math.Ceil(from/size - 0.5))
	hi := int(math.Floor(to/size-0.5)) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

func cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// FillRect implements starfield.Surface. Glyph ink fades under the fill.
func (s *Surface) FillRect(x, y, w, h float64, c starfield.Color) {
	src, a := split(c)
	c0, c1 := span(x, x+w, CellWidth, s.Cols)
	r0, r1 := span(y, y+h, CellHeight, s.Rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			cl := s.at(col, row)
			cl.bg = cl.bg.over(src, a)
			cl.fg = cl.fg.over(src, a)
			cl.ink *= 1 - a
		}
	}
}

// FillCircle implements starfield.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c starfield.Color) {
	src, a := split(c)
	if 2*r < CellWidth {
		s.stamp(cx, cy, src, a)
		return
	}
	s.eachCellIn(cx, cy, r, func(cl *cell, _ float64) {
		cl.bg = cl.bg.over(src, a)
	})
}

// FillRadialGradient implements starfield.Surface, sampling the gradient
// at each cell centre.
func (s *Surface) FillRadialGradient(cx, cy, r float64, stops ...starfield.ColorStop) {
	if 2*r < CellWidth {
		src, a := split(starfield.ColorAt(stops, 0))
		s.stamp(cx, cy, src, a/2)
		return
	}
	s.eachCellIn(cx, cy, r, func(cl *cell, d float64) {
		src, a := split(starfield.ColorAt(stops, d/r))
		cl.bg = cl.bg.over(src, a)
	})
}

// StrokeLinearGradient implements starfield.Surface by stamping points
// half a cell apart along the line.
func (s *Surface) StrokeLinearGradient(x0, y0, x1, y1, _ float64, stops ...starfield.ColorStop) {
	steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0) / (CellWidth / 2)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		src, a := split(starfield.ColorAt(stops, t))
		s.stamp(x0+(x1-x0)*t, y0+(y1-y0)*t, src, a)
	}
}

func (s *Surface) eachCellIn(cx, cy, r float64, fn func(cl *cell, d float64)) {
	c0, c1 := span(cx-r, cx+r, CellWidth, s.Cols)
	r0, r1 := span(cy-r, cy+r, CellHeight, s.Rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			x, y := cellCenter(col, row)
			if d := math.Hypot(x-cx, y-cy); d < r {
				fn(s.at(col, row), d)
			}
		}
	}
}

func (s *Surface) stamp(x, y float64, src rgb, a float64) {
	if a <= 0 || x < 0 || y < 0 {
		return
	}
	cl := s.at(int(x/CellWidth), int(y/CellHeight))
	if cl == nil {
		return
	}
	cl.fg = cl.fg.over(src, a)
	if a > cl.ink {
		cl.ink = a
	}
}

// Glyph picks the rune drawn for an ink level in [0,1].
func Glyph(ink float64) rune {
	if ink <= 0.05 {
		return inkGlyphs[0]
	}
	i := 1 + int(ink*float64(len(inkGlyphs)-1))
	if i >= len(inkGlyphs) {
		i = len(inkGlyphs) - 1
	}
	return inkGlyphs[i]
}

// Flush copies the grid to screen. The caller calls Show.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			cl := s.at(col, row)
			style := tcell.StyleDefault.Background(cl.bg.tcell()).Foreground(cl.fg.tcell())
			screen.SetContent(col, row, Glyph(cl.ink), nil, style)
		}
	}
}
