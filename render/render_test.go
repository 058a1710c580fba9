package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardsketch/config"
	"boardsketch/types"
)

type fakeView struct {
	board   *types.Board
	color   types.Stone
	zoom    types.Zoom
	pointer types.Pointer
}

func (v *fakeView) Board() *types.Board    { return v.board }
func (v *fakeView) Color() types.Stone     { return v.color }
func (v *fakeView) Zoom() types.Zoom       { return v.zoom }
func (v *fakeView) Pointer() types.Pointer { return v.pointer }

func newView() *fakeView {
	return &fakeView{board: types.NewBoard(), color: types.Black, zoom: types.NoZoom}
}

// recorder is a Surface that logs every call.
type recorder struct {
	ops       []string
	strokeErr error
}

func (r *recorder) Width() int  { return 800 }
func (r *recorder) Height() int { return 800 }
func (r *recorder) Clear()      { r.ops = append(r.ops, "clear") }
func (r *recorder) SetRGBA(cr, cg, cb, ca float64) {
	r.ops = append(r.ops, fmt.Sprintf("rgba %g %g %g %g", cr, cg, cb, ca))
}
func (r *recorder) SetLineWidth(w float64) { r.ops = append(r.ops, fmt.Sprintf("width %g", w)) }
func (r *recorder) MoveTo(x, y float64)    { r.ops = append(r.ops, fmt.Sprintf("move %g %g", x, y)) }
func (r *recorder) LineTo(x, y float64)    { r.ops = append(r.ops, fmt.Sprintf("line %g %g", x, y)) }
func (r *recorder) DrawCircle(x, y, rad float64) {
	r.ops = append(r.ops, fmt.Sprintf("circle %g %g %g", x, y, rad))
}
func (r *recorder) DrawRectangle(x, y, w, h float64) {
	r.ops = append(r.ops, fmt.Sprintf("rect %g %g %g %g", x, y, w, h))
}
func (r *recorder) Fill() error         { r.ops = append(r.ops, "fill"); return nil }
func (r *recorder) FillPreserve() error { r.ops = append(r.ops, "fillpreserve"); return nil }
func (r *recorder) Stroke() error {
	r.ops = append(r.ops, "stroke")
	return r.strokeErr
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) circles() []string {
	var out []string
	for _, op := range r.ops {
		if strings.HasPrefix(op, "circle") {
			out = append(out, op)
		}
	}
	return out
}

func testRenderer() *Renderer {
	return NewRenderer(ThemeFromConfig(config.DefaultTheme))
}

func TestFrameEmptyBoard(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, testRenderer().Frame(rec, newView()))

	assert.Equal(t, "clear", rec.ops[0])
	// 17 vertical + 17 horizontal lines and the border.
	assert.Equal(t, 35, rec.count("stroke"))
	// Background and 9 star points.
	assert.Equal(t, 10, rec.count("fill"))
	assert.Equal(t, 9, rec.count("circle"))
	assert.Contains(t, rec.ops, "circle 400 400 5")
	assert.Contains(t, rec.ops, "rect 40 40 720 720")
	assert.Contains(t, rec.ops, "width 2")
	assert.Equal(t, "width 1", rec.ops[len(rec.ops)-1])
}

func TestFrameGridLines(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, testRenderer().Frame(rec, newView()))
	// First interior vertical line, then the first horizontal one.
	assert.Contains(t, rec.ops, "move 80 40")
	assert.Contains(t, rec.ops, "line 80 760")
	assert.Contains(t, rec.ops, "move 40 80")
	assert.Contains(t, rec.ops, "line 760 80")
	// Edge lines come from the border rectangle only.
	assert.NotContains(t, rec.ops, "move 40 40")
	assert.NotContains(t, rec.ops, "move 760 40")
}

func TestFrameStonesAndHover(t *testing.T) {
	v := newView()
	v.board.Set(types.BoardPos{X: 3, Y: 3}, types.Black)
	v.board.Set(types.BoardPos{X: 15, Y: 15}, types.White)
	v.color = types.White
	v.pointer = types.Pointer{X: 200, Y: 120, Inside: true}

	rec := &recorder{}
	require.NoError(t, testRenderer().Frame(rec, v))

	circles := rec.circles()
	require.Len(t, circles, 9+1+2)
	// Hover preview comes before the placed stones.
	assert.Equal(t, "circle 200 120 19", circles[9])
	assert.Equal(t, "circle 160 160 19", circles[10])
	assert.Equal(t, "circle 640 640 19", circles[11])
	assert.Equal(t, 3, rec.count("fillpreserve"))
	assert.Contains(t, rec.ops, "rgba 1 1 1 0.5")
}

func TestFrameHoverOutsideGrid(t *testing.T) {
	v := newView()
	v.pointer = types.Pointer{X: 5, Y: 5, Inside: true}
	rec := &recorder{}
	require.NoError(t, testRenderer().Frame(rec, v))
	assert.Len(t, rec.circles(), 9)

	v.pointer = types.Pointer{}
	rec = &recorder{}
	require.NoError(t, testRenderer().Frame(rec, v))
	assert.Len(t, rec.circles(), 9)
}

func TestFrameZoomedCorner(t *testing.T) {
	v := newView()
	v.zoom = 3
	v.board.Set(types.BoardPos{X: 18, Y: 18}, types.Black)
	v.pointer = types.Pointer{X: 80, Y: 80, Inside: true}

	rec := &recorder{}
	require.NoError(t, testRenderer().Frame(rec, v))

	assert.Contains(t, rec.ops, "rect -720 -720 1440 1440")
	circles := rec.circles()
	require.Len(t, circles, 11)
	// Star point radius scales with the cell size.
	assert.Equal(t, "circle -480 -480 10", circles[0])
	// Hover is drawn without pan, stones with it.
	assert.Equal(t, "circle 80 80 39", circles[9])
	assert.Equal(t, "circle 720 720 39", circles[10])
}

func TestFrameTransparentBackground(t *testing.T) {
	theme := ThemeFromConfig(config.DefaultTheme)
	theme.Background.A = 0
	rec := &recorder{}
	require.NoError(t, NewRenderer(theme).Frame(rec, newView()))
	assert.Equal(t, 9, rec.count("fill"))
	assert.Zero(t, rec.count("rect 0 0"))
}

func TestFrameStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{strokeErr: boom}
	err := testRenderer().Frame(rec, newView())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "draw board")
	assert.Equal(t, 1, rec.count("stroke"))
}

func rgbaAt(t *testing.T, img interface {
	At(x, y int) color.Color
}, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestFrameOnRaster(t *testing.T) {
	v := newView()
	v.board.Set(types.BoardPos{X: 3, Y: 3}, types.Black)
	v.board.Set(types.BoardPos{X: 9, Y: 3}, types.White)
	v.color = types.White
	v.pointer = types.Pointer{X: 240, Y: 240, Inside: true}

	dc := NewSurface(800)
	require.NoError(t, testRenderer().Frame(dc, v))
	img := dc.Image()

	bg := rgbaAt(t, img, 10, 10)
	assert.InDelta(t, 0xdc, int(bg.R), 2)
	assert.InDelta(t, 0xb3, int(bg.G), 2)
	assert.InDelta(t, 0x5c, int(bg.B), 2)
	assert.Equal(t, uint8(0xff), bg.A)

	black := rgbaAt(t, img, 165, 165)
	assert.Less(t, int(black.R), 30)

	white := rgbaAt(t, img, 405, 165)
	assert.Greater(t, int(white.B), 225)

	// Half transparent white over the board: lighter than the board,
	// darker than a placed white stone.
	hover := rgbaAt(t, img, 245, 245)
	assert.Greater(t, int(hover.B), int(bg.B)+20)
	assert.Less(t, int(hover.B), 250)
}

func TestSurfaceSizeIndependentOfZoom(t *testing.T) {
	dc := NewSurface(800)
	v := newView()
	v.zoom = 1
	require.NoError(t, testRenderer().Frame(dc, v))
	assert.Equal(t, 800, dc.Width())
	assert.Equal(t, 800, dc.Height())
}
