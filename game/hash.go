package game

import "github.com/cespare/xxhash/v2"

// Hash identifies a position by its grid and side to move.
func (b *Board) Hash() uint64 {
	var buf [Size*Size + 1]byte
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			buf[row*Size+col] = byte(b.grid[row][col])
		}
	}
	buf[Size*Size] = byte(b.turn)
	return xxhash.Sum64(buf[:])
}
