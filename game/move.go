package game

import "fmt"

// Position is a (row, column) coordinate on the board.
type Position struct {
	Row int
	Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Move represents a move in the game.
type Move struct {
	From Position
	To   Position
}

// IsJump reports whether the move travels more than one square on either axis.
// Jumps vacate the origin; clone moves keep it.
func (m Move) IsJump() bool {
	return abs(m.From.Row-m.To.Row) > CloneRange || abs(m.From.Col-m.To.Col) > CloneRange
}

func (m Move) String() string {
	return fmt.Sprintf("%d %d to %d %d", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
