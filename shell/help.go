package shell

const helpMessage = `Available commands:
	help   - displays this message
	undo   - undo the last move
	new    - start a new game
	show   - show the score and the board
	ai     - print list of AI algorithms available
	quit   - close the program (or exit)
Syntax for making a move:
	<row> <column> to <row> <column>
	Example: 0 3 to 1 2
Syntax for having an AI make a move:
	ai <algorithm> [depth]
	Example: ai greedy
	Another example: ai greedy 2
		- (depth is optional and goes up to 3)
	Type 'ai' by itself for a list of AI algorithms
Additional pointers:
	You can quickly bring up previous commands using the UP arrow.`

const banner = `
##########################
# Ataxx                  #
##########################
`
