package cuberobot

import (
	"fmt"
	"strings"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is a single move token: a face and a turn.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

func parseFace(c byte) (Face, bool) {
	switch c {
	case 'R':
		return FaceR, true
	case 'L':
		return FaceL, true
	case 'U':
		return FaceU, true
	case 'D':
		return FaceD, true
	case 'F':
		return FaceF, true
	case 'B':
		return FaceB, true
	}
	return "", false
}

func parseModifier(c byte) (Turn, bool) {
	switch c {
	case '\'':
		return CCW, true
	case '2':
		return Double, true
	}
	return 0, false
}

// ParseMove parses a single move token such as R, R' or R2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	moves, err := ParseMoves(s)
	if err != nil {
		return Move{}, err
	}
	if len(moves) != 1 {
		return Move{}, fmt.Errorf("%w: %q is not a single move", ErrInvalidMoveSequence, s)
	}
	return moves[0], nil
}

// ParseMoves parses a move sequence written either space-separated
// ("R U R' U'") or concatenated ("RUR'U'").
//
// Every token is validated before anything is returned. A modifier must
// directly follow a face letter; a modifier at the start of the input, after
// whitespace, or after another modifier is rejected rather than attached to a
// neighbouring face.
func ParseMoves(s string) ([]Move, error) {
	moves := make([]Move, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}

		face, ok := parseFace(c)
		if !ok {
			if _, isMod := parseModifier(c); isMod {
				return nil, fmt.Errorf("%w: modifier %q at position %d has no face", ErrInvalidMoveSequence, c, i)
			}
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrInvalidMoveSequence, c, i)
		}

		turn := CW
		if i+1 < len(s) {
			if t, isMod := parseModifier(s[i+1]); isMod {
				turn = t
				i++
			}
		}
		moves = append(moves, Move{Face: face, Turn: turn})
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// CompactMoves formats moves with no separator. This is the form written to
// the rig.
func CompactMoves(moves []Move) string {
	var b strings.Builder
	b.Grow(len(moves) * 2)
	for _, m := range moves {
		b.WriteString(m.Notation())
	}
	return b.String()
}
