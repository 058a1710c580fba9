// Package render draws the board sketch onto an immediate-mode 2D surface.
package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"boardsketch/config"
	"boardsketch/geometry"
	"boardsketch/types"
)

// Surface is the subset of an immediate-mode drawing context the renderer
// uses. *gg.Context implements it.
type Surface interface {
	Width() int
	Height() int
	Clear()
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)
	Fill() error
	FillPreserve() error
	Stroke() error
}

// View is the state a frame is drawn from.
type View interface {
	Board() *types.Board
	Color() types.Stone
	Zoom() types.Zoom
	Pointer() types.Pointer
}

// NewSurface creates a square raster surface of size pixels.
func NewSurface(size int) *gg.Context {
	return gg.NewContext(size, size)
}

const (
	lineWidth   = 1
	borderWidth = 2
)

// Theme holds the colors and sizes used to draw a frame.
type Theme struct {
	Background gg.RGBA
	Line       gg.RGBA
	Black      gg.RGBA
	White      gg.RGBA
	Outline    gg.RGBA
	HoverAlpha float64
	StoneGap   float64
}

// ThemeFromConfig converts the configured hex colors.
func ThemeFromConfig(t config.Theme) Theme {
	return Theme{
		Background: gg.Hex(t.Colors.Background),
		Line:       gg.Hex(t.Colors.Line),
		Black:      gg.Hex(t.Colors.Black),
		White:      gg.Hex(t.Colors.White),
		Outline:    gg.Hex(t.Colors.Outline),
		HoverAlpha: t.HoverAlpha,
		StoneGap:   t.StoneGap,
	}
}

// Renderer draws frames with a fixed theme.
type Renderer struct {
	theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Frame redraws the whole surface from v: background, grid, hover preview,
// then placed stones. Geometry is derived from the zoom selection on every
// call.
func (r *Renderer) Frame(s Surface, v View) error {
	g := geometry.For(v.Zoom())

	s.Clear()
	if err := r.drawBackground(s); err != nil {
		return fmt.Errorf("draw background: %w", err)
	}
	if err := r.drawBoard(s, g); err != nil {
		return fmt.Errorf("draw board: %w", err)
	}
	if err := r.drawHoverStone(s, g, v); err != nil {
		return fmt.Errorf("draw hover stone: %w", err)
	}
	if err := r.drawPlacedStones(s, g, v.Board()); err != nil {
		return fmt.Errorf("draw stones: %w", err)
	}
	return nil
}

func (r *Renderer) drawBackground(s Surface) error {
	if r.theme.Background.A == 0 {
		return nil
	}
	setColor(s, r.theme.Background)
	s.DrawRectangle(0, 0, float64(s.Width()), float64(s.Height()))
	return s.Fill()
}

func (r *Renderer) drawBoard(s Surface, g geometry.Params) error {
	cs, size := g.CellSize, g.BoardSize
	ox, oy := g.OffsetX, g.OffsetY

	setColor(s, r.theme.Line)
	s.SetLineWidth(lineWidth)
	for i := 1; i < types.GridSize-1; i++ {
		at := cs + cs*float64(i)

		// vertical
		s.MoveTo(at+ox, cs+oy)
		s.LineTo(at+ox, size-cs+oy)
		if err := s.Stroke(); err != nil {
			return err
		}

		// horizontal
		s.MoveTo(cs+ox, at+oy)
		s.LineTo(size-cs+ox, at+oy)
		if err := s.Stroke(); err != nil {
			return err
		}
	}

	for _, x := range geometry.StarPoints {
		for _, y := range geometry.StarPoints {
			cx, cy := g.Center(types.BoardPos{X: x, Y: y})
			s.DrawCircle(cx, cy, cs/8)
			if err := s.Fill(); err != nil {
				return err
			}
		}
	}

	s.SetLineWidth(borderWidth)
	s.DrawRectangle(cs+ox, cs+oy, size-cs*2, size-cs*2)
	err := s.Stroke()
	s.SetLineWidth(lineWidth)
	return err
}

// drawHoverStone previews the next stone under the pointer. The preview is
// positioned without the zoom pan, matching how the pointer is picked.
func (r *Renderer) drawHoverStone(s Surface, g geometry.Params, v View) error {
	p := v.Pointer()
	if !p.Inside {
		return nil
	}
	pos, ok := geometry.PixelToCell(p.X, p.Y, g.CellSize)
	if !ok {
		return nil
	}
	x, y := geometry.CellToPixel(pos.X, pos.Y, g.CellSize, 0, 0)
	fill := r.stoneColor(v.Color())
	return r.drawStone(s, x, y, g.CellSize,
		withAlpha(fill, r.theme.HoverAlpha),
		withAlpha(r.theme.Outline, r.theme.HoverAlpha))
}

func (r *Renderer) drawPlacedStones(s Surface, g geometry.Params, b *types.Board) error {
	for y := 0; y < types.GridSize; y++ {
		for x := 0; x < types.GridSize; x++ {
			stone := b[y][x]
			if stone == types.Empty {
				continue
			}
			cx, cy := g.Center(types.BoardPos{X: x, Y: y})
			if err := r.drawStone(s, cx, cy, g.CellSize, r.stoneColor(stone), r.theme.Outline); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) drawStone(s Surface, x, y, cellSize float64, fill, outline gg.RGBA) error {
	setColor(s, fill)
	s.DrawCircle(x, y, (cellSize-r.theme.StoneGap)/2)
	if err := s.FillPreserve(); err != nil {
		return err
	}
	setColor(s, outline)
	return s.Stroke()
}

func (r *Renderer) stoneColor(stone types.Stone) gg.RGBA {
	if stone == types.White {
		return r.theme.White
	}
	return r.theme.Black
}

// withAlpha scales the opacity of c by alpha.
func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}

func setColor(s Surface, c gg.RGBA) {
	s.SetRGBA(c.R, c.G, c.B, c.A)
}
