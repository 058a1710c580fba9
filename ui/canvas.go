// Package ui specifies the tview controls of the board sketchpad.
package ui

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"

	"boardsketch/render"
	"boardsketch/sketch"
)

// BoardCanvas shows the rendered surface in the terminal. Every terminal cell
// holds two vertically stacked samples drawn with an upper half block, so the
// board keeps its square shape.
type BoardCanvas struct {
	*tview.Box
	session  *sketch.Session
	renderer *render.Renderer
	surface  *gg.Context
	sample   *image.RGBA
	frameErr error
	log      *logrus.Entry
}

// blit is the terminal area the surface is shown in.
type blit struct {
	x, y int
	side int // samples per axis; cols == side, rows == side/2
}

func (b blit) empty() bool { return b.side == 0 }

// layoutBlit fits the largest square of samples into the given cell rect and
// centers it.
func layoutBlit(x, y, width, height int) blit {
	side := min(width, height*2)
	side -= side % 2
	if side <= 0 {
		return blit{}
	}
	return blit{
		x:    x + (width-side)/2,
		y:    y + (height-side/2)/2,
		side: side,
	}
}

// surfacePoint maps the center of terminal cell (col, row) to surface pixels.
func (b blit) surfacePoint(col, row, surfaceW, surfaceH int) (float64, float64, bool) {
	if b.empty() {
		return 0, 0, false
	}
	cx, cy := col-b.x, row-b.y
	if cx < 0 || cy < 0 || cx >= b.side || cy >= b.side/2 {
		return 0, 0, false
	}
	px := (float64(cx) + 0.5) * float64(surfaceW) / float64(b.side)
	py := float64(cy*2+1) * float64(surfaceH) / float64(b.side)
	return px, py, true
}

func NewBoardCanvas(session *sketch.Session, renderer *render.Renderer, surface *gg.Context, log *logrus.Entry) *BoardCanvas {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	c := &BoardCanvas{
		Box:      tview.NewBox(),
		session:  session,
		renderer: renderer,
		surface:  surface,
		log:      log.WithField("component", "canvas"),
	}
	c.Box.SetDrawFunc(c.draw)
	return c
}

// Surface returns the drawing surface frames are rendered to.
func (c *BoardCanvas) Surface() *gg.Context {
	return c.surface
}

// FrameErr returns the error of the last frame, if it failed.
func (c *BoardCanvas) FrameErr() error {
	return c.frameErr
}

// SurfacePoint maps a screen position to surface pixels. It reports false
// when the position is outside the shown board.
func (c *BoardCanvas) SurfacePoint(x, y int) (float64, float64, bool) {
	return layoutBlit(c.GetInnerRect()).surfacePoint(x, y, c.surface.Width(), c.surface.Height())
}

func (c *BoardCanvas) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	err := c.renderer.Frame(c.surface, c.session)
	if err != nil && c.frameErr == nil {
		c.log.WithError(err).Error("frame failed")
	}
	c.frameErr = err

	b := layoutBlit(x, y, width, height)
	if b.empty() {
		return x, y, width, height
	}
	if c.sample == nil || c.sample.Bounds().Dx() != b.side {
		c.sample = image.NewRGBA(image.Rect(0, 0, b.side, b.side))
	}
	src := c.surface.Image()
	xdraw.ApproxBiLinear.Scale(c.sample, c.sample.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	for row := 0; row < b.side/2; row++ {
		for col := 0; col < b.side; col++ {
			top := c.sample.RGBAAt(col, row*2)
			bottom := c.sample.RGBAAt(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(b.x+col, b.y+row, '▀', nil, style)
		}
	}
	return x, y, width, height
}
