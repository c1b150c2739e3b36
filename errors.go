package cuberobot

import "errors"

// Sentinel errors for the cuberobot package.
var (
	// Input errors
	ErrInvalidFaceIndex       = errors.New("cuberobot: face index out of range")
	ErrInvalidColorCount      = errors.New("cuberobot: invalid color count")
	ErrInvalidCubeStateLength = errors.New("cuberobot: invalid cube state length")
	ErrUnknownColor           = errors.New("cuberobot: unknown color")
	ErrInvalidMoveSequence    = errors.New("cuberobot: invalid move sequence")
	ErrUnknownAlgorithm       = errors.New("cuberobot: unknown solving algorithm")

	// Solver errors
	ErrNoSolutionAvailable = errors.New("cuberobot: no solution available")
	ErrSolverFailed        = errors.New("cuberobot: solver failed")

	// Link errors
	ErrConnectionFailure = errors.New("cuberobot: connection failure")
	ErrTimeout           = errors.New("cuberobot: operation timed out")
)
