// Package libdraw provides the drawing hook used by the command line runner.
// Programs paint line segments onto a Canvas through the #painter builtin
// and the canvas is rasterized when the program is done.
package libdraw

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/Graphics-Interpreter/GI/lisp"
)

// PainterSymbol is the name #painter is bound to.
const PainterSymbol = "#painter"

// Default canvas dimensions in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 1000
)

// Segment is a line segment in canvas coordinates.  The origin is the
// bottom-left corner of the canvas and y increases upward.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Canvas records painted segments.
type Canvas struct {
	Width      int
	Height     int
	Background color.Color
	Ink        color.Color
	segments   []Segment
}

// NewCanvas returns an empty canvas of the given size which paints black
// ink on white.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:      width,
		Height:     height,
		Background: color.White,
		Ink:        color.Black,
	}
}

// Segments returns the segments painted so far, in order.
func (c *Canvas) Segments() []Segment {
	return c.segments
}

// Paint records seg.
func (c *Canvas) Paint(seg Segment) {
	c.segments = append(c.segments, seg)
}

// LoadPackage returns a Config which binds #painter to a builtin painting
// on c.
func LoadPackage(c *Canvas) lisp.Config {
	return func(s *lisp.Scope) error {
		s.AddBuiltins(c.Painter())
		return nil
	}
}

// Painter returns the #painter builtin for c.  It takes the coordinates of
// both endpoints, (#painter x1 y1 x2 y2).
func (c *Canvas) Painter() lisp.BuiltinDef {
	return lisp.Function(PainterSymbol, c.builtinPaint, lisp.Formals("x1", "y1", "x2", "y2")...)
}

func (c *Canvas) builtinPaint(s *lisp.Scope, args []*lisp.Expr) (*lisp.Expr, error) {
	var xy [4]float64
	for i, arg := range args {
		if arg.Type != lisp.ENumber {
			return nil, lisp.Errorf(lisp.TypeError, "%s: argument is not a number: %v", PainterSymbol, arg)
		}
		if math.IsInf(arg.Num, 0) || math.IsNaN(arg.Num) {
			return nil, lisp.Errorf(lisp.TypeError, "%s: coordinate is not finite: %v", PainterSymbol, arg)
		}
		xy[i] = arg.Num
	}
	c.Paint(Segment{xy[0], xy[1], xy[2], xy[3]})
	return lisp.Void(), nil
}

// Image rasterizes the painted segments.  Pixels which fall outside the
// canvas are discarded.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.Set(x, y, c.Background)
		}
	}
	for _, seg := range c.segments {
		c.rasterize(img, seg)
	}
	return img
}

// rasterize draws the part of seg inside the canvas using Bresenham's line
// algorithm.
func (c *Canvas) rasterize(img *image.RGBA, seg Segment) {
	seg, ok := clip(seg, float64(c.Width-1), float64(c.Height-1))
	if !ok {
		return
	}
	x0, y0 := round(seg.X1), c.Height-1-round(seg.Y1)
	x1, y1 := round(seg.X2), c.Height-1-round(seg.Y2)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if image.Pt(x0, y0).In(img.Rect) {
			img.Set(x0, y0, c.Ink)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// WritePNG encodes the rasterized canvas to w.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// SavePNG writes the rasterized canvas to the file at path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = c.WritePNG(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// clip returns the part of seg inside the rectangle [0,xmax]x[0,ymax]
// (Liang-Barsky).  The second return value is false if no part of seg is
// inside or seg has a coordinate which is not finite.
func clip(seg Segment, xmax, ymax float64) (Segment, bool) {
	for _, x := range [...]float64{seg.X1, seg.Y1, seg.X2, seg.Y2} {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return seg, false
		}
	}
	dx, dy := seg.X2-seg.X1, seg.Y2-seg.Y1
	t0, t1 := 0.0, 1.0
	for _, edge := range [...][2]float64{
		{-dx, seg.X1},
		{dx, xmax - seg.X1},
		{-dy, seg.Y1},
		{dy, ymax - seg.Y1},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return seg, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return seg, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return seg, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return Segment{
		X1: seg.X1 + t0*dx, Y1: seg.Y1 + t0*dy,
		X2: seg.X1 + t1*dx, Y2: seg.Y1 + t1*dy,
	}, true
}

func round(x float64) int {
	return int(math.Round(x))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
