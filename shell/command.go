package shell

import (
	"ataxx/game"
	"errors"
	"strconv"

	"github.com/kballard/go-shellquote"
)

var (
	errNoData     = errors.New("no data in command")
	errMoveSyntax = errors.New("bad command or syntax for move")
	errNoAlgo     = errors.New("no AI algorithm provided")
	errDepth      = errors.New("AI depth must be a whole number")
)

type shellcmd struct {
	cmd  string
	args []string
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

// parseMove reads "r c to r c", or the same four numbers without the "to".
func parseMove(fields []string) (game.Move, error) {
	switch {
	case len(fields) == 5 && fields[2] == "to":
		fields = []string{fields[0], fields[1], fields[3], fields[4]}
	case len(fields) != 4:
		return game.Move{}, errMoveSyntax
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return game.Move{}, errMoveSyntax
		}
		nums[i] = n
	}
	return game.Move{
		From: game.Position{Row: nums[0], Col: nums[1]},
		To:   game.Position{Row: nums[2], Col: nums[3]},
	}, nil
}

// parseAi reads "ai <algorithm> [args...]"; args must be numbers.
func parseAi(args []string) (string, []int, error) {
	if len(args) == 0 {
		return "", nil, errNoAlgo
	}
	nums := make([]int, 0, len(args)-1)
	for _, a := range args[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return "", nil, errDepth
		}
		nums = append(nums, n)
	}
	return args[0], nums, nil
}
