package game

// EvaluateMaterial scores the board by the player's cell count minus the opponent's.
func EvaluateMaterial(b *Board, player Cell) int {
	return b.RelativeScore(player)
}
