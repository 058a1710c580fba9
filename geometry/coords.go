package geometry

import (
	"fmt"

	"boardsketch/types"
)

// Board labels follow the usual Go notation:
// - Columns: A-T (skipping I to avoid confusion with 1)
// - Rows: 1-19 (from bottom of board)
// - Example: D4, Q16, K10
//
// Board positions:
// - X: 0-18 (left to right)
// - Y: 0-18 (top to bottom)
// - Example: (3, 15) for D4

// Label converts a board position to its display label.
// (0, 18) -> A1, (3, 15) -> D4, (15, 3) -> Q16. Positions off the board
// return "-".
func Label(pos types.BoardPos) string {
	if !types.InBounds(pos) {
		return "-"
	}

	// Column: A-T, skipping I
	col := 'A' + rune(pos.X)
	if pos.X >= 8 {
		col++
	}

	// Row: 1-19 from bottom, so invert Y
	row := types.GridSize - pos.Y

	return fmt.Sprintf("%c%d", col, row)
}
