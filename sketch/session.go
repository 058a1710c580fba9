// Package sketch holds the state of a board sketch and the operations the
// user interface performs on it.
package sketch

import (
	"github.com/sirupsen/logrus"

	"boardsketch/geometry"
	"boardsketch/types"
)

// Session owns the board, the placement mode, the zoom selection and the
// pointer. It is not safe for concurrent use; the UI calls it from its event
// goroutine only.
type Session struct {
	board   *types.Board
	mode    types.PlacementMode
	color   types.Stone
	zoom    types.Zoom
	pointer types.Pointer
	log     *logrus.Entry
}

// New creates a session with an empty board in alternate mode, black to
// play and no corner selected.
func New(log *logrus.Entry) *Session {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Session{
		board: types.NewBoard(),
		mode:  types.Alternate,
		color: types.Alternate.StartColor(),
		zoom:  types.NoZoom,
		log:   log.WithField("component", "session"),
	}
}

// Board returns the current board. The returned board is replaced, not
// cleared, by Reset.
func (s *Session) Board() *types.Board {
	return s.board
}

// Mode returns the active placement mode.
func (s *Session) Mode() types.PlacementMode {
	return s.mode
}

// Color returns the color the next placement uses.
func (s *Session) Color() types.Stone {
	return s.color
}

// Zoom returns the selected corner, or types.NoZoom.
func (s *Session) Zoom() types.Zoom {
	return s.zoom
}

// Pointer returns the last known pointer position.
func (s *Session) Pointer() types.Pointer {
	return s.pointer
}

// Geometry returns the geometry for the current zoom selection.
func (s *Session) Geometry() geometry.Params {
	return geometry.For(s.zoom)
}

// HoverCell returns the intersection under the pointer.
func (s *Session) HoverCell() (types.BoardPos, bool) {
	if !s.pointer.Inside {
		return types.BoardPos{}, false
	}
	return geometry.PixelToCell(s.pointer.X, s.pointer.Y, s.Geometry().CellSize)
}

// PointerMove records the pointer position in surface pixels.
func (s *Session) PointerMove(x, y float64) {
	s.pointer = types.Pointer{X: x, Y: y, Inside: true}
}

// PointerLeave forgets the pointer position.
func (s *Session) PointerLeave() {
	s.pointer = types.Pointer{}
}

// NudgePointer moves the pointer by whole cells. Without a pointer it is
// placed on the center intersection. The pointer never leaves the grid.
func (s *Session) NudgePointer(dCol, dRow int) {
	cs := s.Geometry().CellSize
	pos, ok := s.HoverCell()
	if !ok {
		center := types.GridSize / 2
		x, y := geometry.CellToPixel(center, center, cs, 0, 0)
		s.PointerMove(x, y)
		return
	}
	pos.X = clamp(pos.X+dCol, 0, types.GridSize-1)
	pos.Y = clamp(pos.Y+dRow, 0, types.GridSize-1)
	x, y := geometry.CellToPixel(pos.X, pos.Y, cs, 0, 0)
	s.PointerMove(x, y)
}

// Click toggles the intersection under the pointer. An empty intersection
// gets the current color, an occupied one is cleared. It returns false when
// the pointer is not over the grid.
func (s *Session) Click() bool {
	pos, ok := s.HoverCell()
	if !ok {
		return false
	}
	if s.board.At(pos) != types.Empty {
		s.board.Set(pos, types.Empty)
		s.log.WithField("pos", geometry.Label(pos)).Debug("stone removed")
		return true
	}
	s.board.Set(pos, s.color)
	s.log.WithFields(logrus.Fields{
		"pos":   geometry.Label(pos),
		"color": s.color,
	}).Debug("stone placed")
	if s.mode == types.Alternate {
		s.color = s.color.Opposite()
	}
	return true
}

// SetMode switches the placement mode and resets the current color to the
// mode's starting color.
func (s *Session) SetMode(mode types.PlacementMode) {
	if !mode.Valid() {
		return
	}
	s.mode = mode
	s.color = mode.StartColor()
	s.log.WithField("mode", mode).Debug("mode changed")
}

// SelectCorner zooms into corner, or back out when corner is already
// selected. Unknown corners are ignored.
func (s *Session) SelectCorner(corner types.Zoom) {
	if !corner.Valid() {
		return
	}
	if s.zoom == corner {
		s.zoom = types.NoZoom
	} else {
		s.zoom = corner
	}
	s.log.WithField("zoom", s.zoom).Debug("zoom changed")
}

// Reset replaces the board with a new empty one. Mode, color and zoom are
// kept.
func (s *Session) Reset() {
	s.board = types.NewBoard()
	s.log.Info("board reset")
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
