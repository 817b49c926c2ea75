package game

const (
	// CloneRange is the largest per-axis distance of a clone move.
	CloneRange = 1
	// JumpRange is the largest per-axis distance of any move.
	JumpRange = 2
	// CaptureRadius is the per-axis reach of a capture around the destination.
	CaptureRadius = 1
)
