// Package sgf implements SGF FF[4] writing of board positions.
package sgf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"boardsketch/types"
)

// Options are the root properties written alongside a position.
type Options struct {
	// Date is written as DT; the zero time writes today's date.
	Date time.Time
	// ToPlay is written as PL when it is Black or White.
	ToPlay types.Stone
	// Comment is written as C when not empty.
	Comment string
}

// sgfCoord converts 0-indexed board coordinates to SGF letter pair.
// (0,0) -> "aa", (3,4) -> "de", (18,18) -> "ss".
func sgfCoord(x, y int) string {
	return string(rune('a'+x)) + string(rune('a'+y))
}

// setupLists scans a board and returns the AB[]/AW[] coordinates in
// row-major order.
func setupLists(board *types.Board) (black, white []string) {
	for y := range board {
		for x := range board[y] {
			switch board[y][x] {
			case types.Black:
				black = append(black, sgfCoord(x, y))
			case types.White:
				white = append(white, sgfCoord(x, y))
			}
		}
	}
	return black, white
}

// WritePosition writes board as a single node SGF record with setup
// properties.
func WritePosition(w io.Writer, board *types.Board, opts Options) error {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	var b strings.Builder

	// Root node
	b.WriteString("(;GM[1]FF[4]CA[UTF-8]")
	b.WriteString("AP[boardsketch:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", types.GridSize))
	b.WriteString(fmt.Sprintf("DT[%s]", date.Format("2006-01-02")))
	switch opts.ToPlay {
	case types.Black:
		b.WriteString("PL[B]")
	case types.White:
		b.WriteString("PL[W]")
	}
	if opts.Comment != "" {
		b.WriteString(fmt.Sprintf("C[%s]", escapeText(opts.Comment)))
	}
	b.WriteString("\n")

	black, white := setupLists(board)
	if len(black) > 0 {
		b.WriteString("AB")
		for _, c := range black {
			b.WriteString(fmt.Sprintf("[%s]", c))
		}
		b.WriteString("\n")
	}
	if len(white) > 0 {
		b.WriteString("AW")
		for _, c := range white {
			b.WriteString(fmt.Sprintf("[%s]", c))
		}
		b.WriteString("\n")
	}

	b.WriteString(")\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write sgf: %w", err)
	}
	return nil
}

// escapeText escapes the characters SGF reserves inside property values.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "]", `\]`)
}
