package libdraw

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
	"time"

	"github.com/Graphics-Interpreter/GI/lisp"
	"github.com/Graphics-Interpreter/GI/lisp/lisplib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScope(t *testing.T, c *Canvas) *lisp.Scope {
	t.Helper()
	s, err := lisplib.NewScope(LoadPackage(c))
	require.NoError(t, err)
	require.NoError(t, s.LoadFile(lisplib.SetupLibrary))
	return s
}

func TestPainter(t *testing.T) {
	c := NewCanvas(10, 10)
	s := newScope(t, c)

	v, err := s.LoadString("test", "(#painter 0 0 9 0)")
	require.NoError(t, err)
	assert.True(t, v.IsVoid())
	assert.Equal(t, []Segment{{0, 0, 9, 0}}, c.Segments())

	_, err = s.LoadString("test", "(#painter 0 0 1)")
	assert.Equal(t, lisp.ArityError, lisp.KindOf(err))
	_, err = s.LoadString("test", "(#painter 0 0 1 #t)")
	assert.Equal(t, lisp.TypeError, lisp.KindOf(err))
	assert.Len(t, c.Segments(), 1)
}

func TestSetupLibrary(t *testing.T) {
	c := NewCanvas(10, 10)
	s := newScope(t, c)

	v, err := s.LoadString("test", "(draw (polyline (list (list 0 0) (list 5 5) (list 9 0))))")
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
	assert.Equal(t, []Segment{{0, 0, 5, 5}, {5, 5, 9, 0}}, c.Segments())

	v, err = s.LoadString("test", "(polyline '())")
	require.NoError(t, err)
	assert.Equal(t, "'()", v.String())
}

func TestImage(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Paint(Segment{0, 0, 9, 0})
	c.Paint(Segment{0, 0, 20, 20})
	img := c.Image()

	// y increases upward so the first segment is on the bottom row
	for x := 0; x < 10; x++ {
		assert.Equal(t, color.RGBAModel.Convert(color.Black), img.At(x, 9), "x: %d", x)
	}
	assert.Equal(t, color.RGBAModel.Convert(color.Black), img.At(5, 4))
	assert.Equal(t, color.RGBAModel.Convert(color.White), img.At(5, 0))

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 10, decoded.Bounds().Dx())
	assert.Equal(t, 10, decoded.Bounds().Dy())
}

func TestPainterNotFinite(t *testing.T) {
	c := NewCanvas(10, 10)
	s := newScope(t, c)

	_, err := s.LoadString("test", "(#painter 0 0 (#reciprocal 0) 0)")
	assert.Equal(t, lisp.TypeError, lisp.KindOf(err))
	assert.EqualError(t, err, "#painter: coordinate is not finite: +Inf")
	assert.Len(t, c.Segments(), 0)
}

func TestImageClipped(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Paint(Segment{0, 0, 1e12, 0})
	c.Paint(Segment{-1e12, 5, 1e12, 5})
	c.Paint(Segment{20, 20, 30, 40})
	c.Paint(Segment{0, 0, math.Inf(1), 0})

	done := make(chan *image.RGBA, 1)
	go func() { done <- c.Image() }()
	var img *image.RGBA
	select {
	case img = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("rasterizing off-canvas segments did not finish")
	}
	black := color.RGBAModel.Convert(color.Black)
	for x := 0; x < 10; x++ {
		assert.Equal(t, black, img.At(x, 9), "x: %d", x)
		assert.Equal(t, black, img.At(x, 4), "x: %d", x)
	}
	assert.Equal(t, color.RGBAModel.Convert(color.White), img.At(5, 0))
}

func TestClip(t *testing.T) {
	seg, ok := clip(Segment{-5, 2, 15, 2}, 9, 9)
	assert.True(t, ok)
	assert.Equal(t, Segment{0, 2, 9, 2}, seg)

	seg, ok = clip(Segment{1, 1, 3, 4}, 9, 9)
	assert.True(t, ok)
	assert.Equal(t, Segment{1, 1, 3, 4}, seg)

	_, ok = clip(Segment{-5, -5, -1, 20}, 9, 9)
	assert.False(t, ok)
	_, ok = clip(Segment{math.NaN(), 0, 1, 1}, 9, 9)
	assert.False(t, ok)
}
