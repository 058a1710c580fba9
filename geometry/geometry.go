// Package geometry maps surface pixels to board intersections and back.
//
// The board is drawn with a one cell margin on every side, so a board of
// boardSize pixels has 20 cells of boardSize/20 pixels and the first
// intersection sits one cell in from the origin. Zooming doubles the board
// size and pans the origin so the chosen quadrant fills the surface.
package geometry

import (
	"math"

	"boardsketch/types"
)

const (
	// FullBoardSize is the board size in pixels with no corner selected.
	FullBoardSize = 800
	// ZoomedBoardSize is the board size in pixels while a corner is selected.
	ZoomedBoardSize = 1600

	cellsPerSide = types.GridSize + 1
)

// StarPoints are the hoshi indexes on each axis of a 19x19 board.
var StarPoints = [3]int{3, 9, 15}

// Params are the geometry values derived from a zoom selection.
type Params struct {
	BoardSize float64
	CellSize  float64
	OffsetX   float64
	OffsetY   float64
}

// For derives the geometry for zoom.
func For(zoom types.Zoom) Params {
	size := BoardSize(zoom)
	ox, oy := Offset(zoom)
	return Params{
		BoardSize: size,
		CellSize:  CellSize(size),
		OffsetX:   ox,
		OffsetY:   oy,
	}
}

// CellSize returns the spacing between lines for a board of boardSize pixels.
func CellSize(boardSize float64) float64 {
	return boardSize / cellsPerSide
}

// BoardSize returns the board size in pixels for zoom.
func BoardSize(zoom types.Zoom) float64 {
	if !zoom.Valid() {
		return FullBoardSize
	}
	return ZoomedBoardSize
}

// Offset returns the pan applied to the drawing origin for zoom.
func Offset(zoom types.Zoom) (x, y float64) {
	half := BoardSize(zoom) / 2
	switch zoom {
	case 1:
		return -half, 0
	case 2:
		return 0, -half
	case 3:
		return -half, -half
	}
	return 0, 0
}

// PixelToCell returns the intersection nearest to the pixel (px, py).
// The pan offset is not taken into account. ok is false when the pixel is
// outside the grid.
func PixelToCell(px, py, cellSize float64) (pos types.BoardPos, ok bool) {
	if cellSize <= 0 || math.IsNaN(px) || math.IsNaN(py) {
		return types.BoardPos{}, false
	}
	col := math.Floor((px - cellSize/2) / cellSize)
	row := math.Floor((py - cellSize/2) / cellSize)
	if col < 0 || col > types.GridSize-1 || row < 0 || row > types.GridSize-1 {
		return types.BoardPos{}, false
	}
	return types.BoardPos{X: int(col), Y: int(row)}, true
}

// CellToPixel returns the pixel center of the intersection (col, row).
func CellToPixel(col, row int, cellSize, offsetX, offsetY float64) (x, y float64) {
	return cellSize + cellSize*float64(col) + offsetX,
		cellSize + cellSize*float64(row) + offsetY
}

// Center returns the pixel center of pos under p, including the pan.
func (p Params) Center(pos types.BoardPos) (x, y float64) {
	return CellToPixel(pos.X, pos.Y, p.CellSize, p.OffsetX, p.OffsetY)
}

// IsStarPoint reports whether (col, row) is a star point.
func IsStarPoint(col, row int) bool {
	return isStarIndex(col) && isStarIndex(row)
}

func isStarIndex(i int) bool {
	for _, s := range StarPoints {
		if i == s {
			return true
		}
	}
	return false
}
