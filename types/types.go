// Package types contains shared data structures for boardsketch.
package types

import "fmt"

// GridSize is the number of intersections along one side of the board.
const GridSize = 19

// Stone is the content of a single intersection.
type Stone int

const (
	Empty Stone = iota
	Black
	White
)

// Opposite returns the other stone color. Empty stays Empty.
func (s Stone) Opposite() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (s Stone) String() string {
	switch s {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("stone(%d)", int(s))
	}
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int // column
	Y int // row
}

// Board is indexed as Board[y][x].
type Board [GridSize][GridSize]Stone

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// InBounds reports whether pos lies on the board.
func InBounds(pos BoardPos) bool {
	return pos.X >= 0 && pos.X < GridSize && pos.Y >= 0 && pos.Y < GridSize
}

// At returns the stone at pos, or Empty when pos is off the board.
func (b *Board) At(pos BoardPos) Stone {
	if !InBounds(pos) {
		return Empty
	}
	return b[pos.Y][pos.X]
}

// Set places s at pos. Positions off the board are ignored.
func (b *Board) Set(pos BoardPos, s Stone) {
	if !InBounds(pos) {
		return
	}
	b[pos.Y][pos.X] = s
}

// Count returns the number of black and white stones on the board.
func (b *Board) Count() (black, white int) {
	for y := range b {
		for x := range b[y] {
			switch b[y][x] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// PlacementMode decides which color the next click places.
type PlacementMode int

const (
	Alternate PlacementMode = iota
	FixedBlack
	FixedWhite
)

// Modes lists the placement modes in the order their controls appear.
var Modes = []PlacementMode{Alternate, FixedBlack, FixedWhite}

// Valid reports whether m is one of the known modes.
func (m PlacementMode) Valid() bool {
	return m >= Alternate && m <= FixedWhite
}

// StartColor is the color a mode places first.
func (m PlacementMode) StartColor() Stone {
	if m == FixedWhite {
		return White
	}
	return Black
}

func (m PlacementMode) String() string {
	switch m {
	case Alternate:
		return "alternate"
	case FixedBlack:
		return "black"
	case FixedWhite:
		return "white"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Zoom selects a magnified board corner, or NoZoom for the full board.
// Corners are 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
type Zoom int

const NoZoom Zoom = -1

// NumCorners is the number of selectable corners.
const NumCorners = 4

// Valid reports whether z names a corner.
func (z Zoom) Valid() bool {
	return z >= 0 && z < NumCorners
}

func (z Zoom) String() string {
	switch z {
	case NoZoom:
		return "full board"
	case 0:
		return "top-left"
	case 1:
		return "top-right"
	case 2:
		return "bottom-left"
	case 3:
		return "bottom-right"
	default:
		return fmt.Sprintf("zoom(%d)", int(z))
	}
}

// Pointer is the last known pointer position in surface pixels.
// Inside is false once the pointer has left the surface.
type Pointer struct {
	X, Y   float64
	Inside bool
}
