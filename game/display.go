package game

import (
	"fmt"
	"strings"
)

// String renders the board with column headers and one row per line.
// Cells print as 0 (empty), 1 or 2.
func (b *Board) String() string {
	var sb strings.Builder
	cols := make([]string, Size)
	bars := make([]string, Size)
	for i := 0; i < Size; i++ {
		cols[i] = fmt.Sprint(i)
		bars[i] = "|"
	}
	sb.WriteString("    " + strings.Join(cols, " ") + "\n")
	sb.WriteString("    " + strings.Join(bars, " ") + "\n")
	for row := 0; row < Size; row++ {
		cells := make([]string, Size)
		for col := 0; col < Size; col++ {
			cells[col] = fmt.Sprint(int(b.grid[row][col]))
		}
		fmt.Fprintf(&sb, "%d - %s", row, strings.Join(cells, " "))
		if row < Size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// NewBoardFromRows builds a position from Size rows of Size cells, top row first.
// A cell is '.' or '0' for empty, '1' or '2' for a player; spaces are ignored.
// Scores and legal moves are derived for the given side to move.
func NewBoardFromRows(turn Cell, rows ...string) (*Board, error) {
	if turn != Player1 && turn != Player2 {
		return nil, fmt.Errorf("%w: turn must be Player1 or Player2, got %d", ErrBadLayout, turn)
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadLayout, Size, len(rows))
	}
	b := &Board{turn: turn}
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadLayout, row, len(line))
		}
		for col, ch := range line {
			switch ch {
			case '.', '0':
				b.grid[row][col] = Empty
			case '1':
				b.grid[row][col] = Player1
			case '2':
				b.grid[row][col] = Player2
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrBadLayout, ch, row, col)
			}
		}
	}
	b.refresh()
	return b, nil
}
