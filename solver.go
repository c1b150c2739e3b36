package cuberobot

import (
	"context"
	"fmt"
	"strings"
)

// Algorithm names a solving strategy understood by the external solver.
type Algorithm string

const (
	Beginner Algorithm = "Beginner"
	CFOP     Algorithm = "CFOP"
	Kociemba Algorithm = "Kociemba"
)

// DefaultAlgorithm is used when none is given.
const DefaultAlgorithm = Kociemba

// Algorithms lists the supported algorithms.
var Algorithms = []Algorithm{Beginner, CFOP, Kociemba}

// ParseAlgorithm matches an algorithm name case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(string(a), strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Solver produces a move sequence that solves the given cube state.
// Implementations are opaque; the answer may use any notation ParseSolution
// understands.
type Solver interface {
	Solve(ctx context.Context, state CubeState, algorithm Algorithm) (string, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, state CubeState, algorithm Algorithm) (string, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, state CubeState, algorithm Algorithm) (string, error) {
	return f(ctx, state, algorithm)
}

// ParseSolution normalises solver output into moves. Besides plain notation it
// accepts list renderings such as `[R, U', F2]` or `["R", "U'"]`.
func ParseSolution(raw string) ([]Move, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ',', '"':
			return ' '
		}
		return r
	}, raw)
	return ParseMoves(cleaned)
}
