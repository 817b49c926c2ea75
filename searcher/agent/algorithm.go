package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Algorithm int

const (
	Random Algorithm = iota
	Greedy
)

func (a Algorithm) String() string {
	switch a {
	case Random:
		return "random"
	case Greedy:
		return "greedy"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every algorithm in the order the console shows them.
func Algorithms() []Algorithm {
	return []Algorithm{Random, Greedy}
}

func Names() []string {
	return lo.Map(Algorithms(), func(a Algorithm, _ int) string {
		return a.String()
	})
}

func ParseAlgorithm(name string) (Algorithm, error) {
	alg, ok := lo.Find(Algorithms(), func(a Algorithm) bool {
		return a.String() == name
	})
	if !ok {
		return 0, fmt.Errorf("%w %q, expected one of: %s", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return alg, nil
}

// ParseSpec reads an agent spec of the form <algorithm>[:<depth>], e.g. "greedy:2".
func ParseSpec(spec string) (Algorithm, []int, error) {
	name, arg, hasArg := strings.Cut(spec, ":")
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return 0, nil, err
	}
	if !hasArg {
		return alg, nil, nil
	}
	depth, err := strconv.Atoi(arg)
	if err != nil {
		return 0, nil, fmt.Errorf("%w %q: %v", ErrBadSpec, spec, err)
	}
	return alg, []int{depth}, nil
}
