package cuberobot

import (
	"context"
	"errors"
	"fmt"
)

// Session holds everything one operator works on: the colors entered for
// each face, the cube state built from them and the last solution.
//
// A Session is not safe for concurrent use.
type Session struct {
	cfg *config

	faces     [FaceCount][]Color
	state     CubeState
	solution  []Move
	algorithm Algorithm
}

// NewSession returns an empty session.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Session{cfg: cfg}
}

// SetFaceColors stores the nine colors of one face. Changing a face discards
// any previously built cube state; the last solution is kept until the next
// Solve.
func (s *Session) SetFaceColors(slot FaceSlot, colors []Color) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %d, expected 0-%d", ErrInvalidFaceIndex, int(slot), FaceCount-1)
	}
	if len(colors) != FaceletsPerFace {
		return fmt.Errorf("%w: %s face got %d colors, expected %d",
			ErrInvalidColorCount, slot, len(colors), FaceletsPerFace)
	}
	for i, c := range colors {
		if !c.Valid() {
			return fmt.Errorf("%w: %s face facelet %d", ErrUnknownColor, slot, i+1)
		}
	}

	s.faces[slot] = append([]Color(nil), colors...)
	s.state = ""
	s.cfg.logger.Info("face colors set", "face", slot.String(), "labels", labels(colors))
	return nil
}

// SetFaceHex parses palette hex strings (or labels) and stores them.
func (s *Session) SetFaceHex(slot FaceSlot, values []string) error {
	colors, err := ParseColors(values)
	if err != nil {
		return fmt.Errorf("%s face: %w", slot, err)
	}
	return s.SetFaceColors(slot, colors)
}

// ClearFace forgets the colors of one face.
func (s *Session) ClearFace(slot FaceSlot) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFaceIndex, int(slot))
	}
	s.faces[slot] = nil
	s.state = ""
	return nil
}

// FaceColors returns a copy of the colors entered for a face.
func (s *Session) FaceColors(slot FaceSlot) []Color {
	if !slot.Valid() {
		return nil
	}
	return append([]Color(nil), s.faces[slot]...)
}

// FaceComplete reports whether all nine colors of a face are entered.
func (s *Session) FaceComplete(slot FaceSlot) bool {
	return slot.Valid() && len(s.faces[slot]) == FaceletsPerFace
}

// ConvertColors builds the cube-state string from the entered faces and
// validates the color counts.
func (s *Session) ConvertColors() (CubeState, error) {
	state, err := BuildState(s.faces)
	if err != nil {
		s.cfg.logger.Warn("cube state incomplete", "error", err)
		return "", err
	}
	if err := state.Validate(); err != nil {
		s.cfg.logger.Warn("cube state invalid", "state", string(state), "error", err)
		return "", err
	}

	s.state = state
	s.cfg.logger.Info("cube state generated", "state", string(state))
	return state, nil
}

// State returns the last successfully converted cube state, if any.
func (s *Session) State() CubeState {
	return s.state
}

// Solve asks solver for a solution to the current cube state and records it
// as the session's solution. An empty algorithm uses the session default.
func (s *Session) Solve(ctx context.Context, solver Solver, algorithm Algorithm) (string, error) {
	if s.state == "" {
		if _, err := s.ConvertColors(); err != nil {
			return "", err
		}
	}
	// A restored state has not been checked yet.
	if err := s.state.Validate(); err != nil {
		return "", err
	}
	if algorithm == "" {
		algorithm = s.cfg.algorithm
	}

	raw, err := solver.Solve(ctx, s.state, algorithm)
	if err != nil {
		s.cfg.logger.Error("solve failed", "algorithm", string(algorithm), "error", err)
		if errors.Is(err, ErrSolverFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}

	moves, err := ParseSolution(raw)
	if err != nil {
		return "", fmt.Errorf("%w: unreadable answer %q: %w", ErrSolverFailed, raw, err)
	}

	s.solution = moves
	s.algorithm = algorithm
	solution := CompactMoves(moves)
	s.cfg.logger.Info("solution generated", "algorithm", string(algorithm), "moves", len(moves), "solution", solution)
	return solution, nil
}

// SetSolution records a solution obtained elsewhere, e.g. from history.
func (s *Session) SetSolution(moves string, algorithm Algorithm) error {
	parsed, err := ParseMoves(moves)
	if err != nil {
		return err
	}
	s.solution = parsed
	s.algorithm = algorithm
	return nil
}

// Solution returns the last solution in concatenated form.
func (s *Session) Solution() (string, error) {
	if s.solution == nil {
		return "", ErrNoSolutionAvailable
	}
	return CompactMoves(s.solution), nil
}

// SolutionMoves returns a copy of the last solution.
func (s *Session) SolutionMoves() []Move {
	return append([]Move(nil), s.solution...)
}

// Algorithm returns the algorithm that produced the last solution.
func (s *Session) Algorithm() Algorithm {
	return s.algorithm
}

// ReversedMoves returns the sequence that undoes the last solution.
func (s *Session) ReversedMoves() (string, error) {
	if s.solution == nil {
		return "", ErrNoSolutionAvailable
	}
	reversed := CompactMoves(InvertMoves(s.solution))
	s.cfg.logger.Info("reversed moves generated", "moves", reversed)
	return reversed, nil
}

// Reset clears faces, state and solution.
func (s *Session) Reset() {
	s.faces = [FaceCount][]Color{}
	s.state = ""
	s.solution = nil
	s.algorithm = ""
	s.cfg.logger.Info("session reset")
}

// Snapshot is the serialisable form of a Session.
type Snapshot struct {
	Faces     [FaceCount]string `json:"faces"`
	State     string            `json:"state,omitempty"`
	Solution  *string           `json:"solution,omitempty"`
	Algorithm string            `json:"algorithm,omitempty"`
}

// Snapshot captures the session so it can be restored later.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	for i, face := range s.faces {
		snap.Faces[i] = labels(face)
	}
	snap.State = string(s.state)
	if s.solution != nil {
		sol := CompactMoves(s.solution)
		snap.Solution = &sol
	}
	snap.Algorithm = string(s.algorithm)
	return snap
}

// Restore replaces the session contents with a snapshot.
func (s *Session) Restore(snap Snapshot) error {
	var faces [FaceCount][]Color
	for i, lbls := range snap.Faces {
		if lbls == "" {
			continue
		}
		face := make([]Color, 0, len(lbls))
		for j := 0; j < len(lbls); j++ {
			c, err := ColorFromLabel(lbls[j])
			if err != nil {
				return fmt.Errorf("%s face: %w", FaceSlot(i), err)
			}
			face = append(face, c)
		}
		faces[i] = face
	}

	var solution []Move
	if snap.Solution != nil {
		moves, err := ParseMoves(*snap.Solution)
		if err != nil {
			return fmt.Errorf("stored solution: %w", err)
		}
		solution = moves
	}

	s.faces = faces
	s.state = CubeState(snap.State)
	s.solution = solution
	s.algorithm = Algorithm(snap.Algorithm)
	return nil
}

func labels(colors []Color) string {
	b := make([]byte, len(colors))
	for i, c := range colors {
		b[i] = c.Label()
	}
	return string(b)
}
