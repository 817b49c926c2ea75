package game

import (
	"fmt"
	"slices"
)

// Board holds the grid, the side to move, and values derived from both.
// The derived fields are only ever written by Play (and the constructors), so they
// always describe the current grid.
type Board struct {
	grid       [Size][Size]Cell
	turn       Cell   // The player to move next
	legalMoves []Move // Ordered by origin then destination, row-major
	score1     int
	score2     int
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b := &Board{turn: Player1}
	b.grid[0][0] = Player1
	b.grid[Size-1][Size-1] = Player1
	b.grid[0][Size-1] = Player2
	b.grid[Size-1][0] = Player2
	b.refresh()
	return b
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	// The grid is an array so it is copied by value
	return &Board{
		grid:       b.grid,
		turn:       b.turn,
		legalMoves: slices.Clone(b.legalMoves),
		score1:     b.score1,
		score2:     b.score2,
	}
}

func (b *Board) Turn() Cell {
	return b.turn
}

// Score returns the number of cells owned by Player1 and Player2.
func (b *Board) Score() (int, int) {
	return b.score1, b.score2
}

// LegalMoves returns a copy of the legal moves for the side to move.
func (b *Board) LegalMoves() []Move {
	return slices.Clone(b.legalMoves)
}

func (b *Board) NumLegalMoves() int {
	return len(b.legalMoves)
}

// GameOver reports whether the side to move is blocked.
func (b *Board) GameOver() bool {
	return len(b.legalMoves) == 0
}

// Winner returns the player with more cells once the game is over.
// It returns Empty while the game is still on or when the game ended in a draw.
func (b *Board) Winner() Cell {
	if !b.GameOver() {
		return Empty
	}
	switch {
	case b.score1 > b.score2:
		return Player1
	case b.score2 > b.score1:
		return Player2
	}
	return Empty
}

// RelativeScore returns the player's cell count minus the opponent's.
func (b *Board) RelativeScore(player Cell) int {
	if player == Player2 {
		return b.score2 - b.score1
	}
	return b.score1 - b.score2
}

// At returns the content of a cell, or false if the position is off the board.
func (b *Board) At(pos Position) (Cell, bool) {
	if !pos.InBounds() {
		return Empty, false
	}
	return b.grid[pos.Row][pos.Col], true
}

func (b *Board) set(pos Position, c Cell) {
	b.grid[pos.Row][pos.Col] = c
}

// IsLegal checks if a proposed move is legal for the side to move.
func (b *Board) IsLegal(m Move) bool {
	// Both ends on the board, origin holds the mover's piece
	from, ok := b.At(m.From)
	if !ok || from != b.turn {
		return false
	}
	// Destination is empty
	to, ok := b.At(m.To)
	if !ok || to != Empty {
		return false
	}
	// Each axis is bounded separately
	if abs(m.From.Row-m.To.Row) > JumpRange {
		return false
	}
	if abs(m.From.Col-m.To.Col) > JumpRange {
		return false
	}
	return true
}

// Play applies a move for the side to move and passes the turn.
// The board is left untouched when the move is illegal.
func (b *Board) Play(m Move) error {
	if !b.IsLegal(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if m.IsJump() {
		b.set(m.From, Empty)
	}
	b.set(m.To, b.turn)

	// Absorb every piece around the destination, own pieces included
	for row := m.To.Row - CaptureRadius; row <= m.To.Row+CaptureRadius; row++ {
		for col := m.To.Col - CaptureRadius; col <= m.To.Col+CaptureRadius; col++ {
			pos := Position{Row: row, Col: col}
			c, ok := b.At(pos)
			if !ok {
				continue
			}
			if c != Empty {
				b.set(pos, b.turn)
			}
		}
	}

	b.turn = b.turn.Opponent()
	b.refresh()
	return nil
}

// refresh recomputes the scores and the legal moves from the grid and turn.
func (b *Board) refresh() {
	b.computeScore()
	b.computeLegalMoves()
}

func (b *Board) computeScore() {
	s1, s2 := 0, 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b.grid[row][col] {
			case Player1:
				s1++
			case Player2:
				s2++
			}
		}
	}
	b.score1 = s1
	b.score2 = s2
}

func (b *Board) computeLegalMoves() {
	b.legalMoves = nil
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.grid[row][col] != b.turn {
				continue
			}
			from := Position{Row: row, Col: col}
			for r := row - JumpRange; r <= row+JumpRange; r++ {
				for c := col - JumpRange; c <= col+JumpRange; c++ {
					m := Move{From: from, To: Position{Row: r, Col: c}}
					if b.IsLegal(m) {
						b.legalMoves = append(b.legalMoves, m)
					}
				}
			}
		}
	}
}
