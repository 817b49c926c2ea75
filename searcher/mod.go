package searcher

import "errors"

const (
	// Win is the value of a won terminal position, and -Win of a lost one.
	Win = 1000000

	MaxDepth     = 3
	DefaultDepth = 1
)

var (
	ErrUnsupportedDepth = errors.New("unsupported search depth")
	ErrNoLegalMoves     = errors.New("no legal moves")
)
