package cuberobot

import (
	"fmt"
	"strings"
)

const (
	// FaceCount is the number of cube faces.
	FaceCount = 6
	// FaceletsPerFace is the number of stickers on one face.
	FaceletsPerFace = 9
	// StateLength is the length of a complete cube-state string.
	StateLength = FaceCount * FaceletsPerFace
)

// FaceSlot identifies a face by its position in the cube-state string.
// Slots follow the order the faces are entered in, named by centre color.
type FaceSlot int

const (
	SlotYellow FaceSlot = iota
	SlotBlue
	SlotRed
	SlotGreen
	SlotOrange
	SlotWhite
)

// Slots lists the face slots in traversal order.
var Slots = []FaceSlot{SlotYellow, SlotBlue, SlotRed, SlotGreen, SlotOrange, SlotWhite}

// Center returns the center color that names the slot.
func (s FaceSlot) Center() Color {
	switch s {
	case SlotYellow:
		return Yellow
	case SlotBlue:
		return Blue
	case SlotRed:
		return Red
	case SlotGreen:
		return Green
	case SlotOrange:
		return Orange
	case SlotWhite:
		return White
	default:
		return NoColor
	}
}

func (s FaceSlot) String() string {
	if c := s.Center(); c != NoColor {
		return c.Name()
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Valid reports whether s is within 0..5.
func (s FaceSlot) Valid() bool {
	return s >= 0 && int(s) < FaceCount
}

// ParseFaceSlot accepts a slot number ("0".."5") or a center color name.
func ParseFaceSlot(v string) (FaceSlot, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if len(v) == 1 && v[0] >= '0' && v[0] <= '9' {
		slot := FaceSlot(v[0] - '0')
		if !slot.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidFaceIndex, slot)
		}
		return slot, nil
	}
	for _, s := range Slots {
		if s.Center().Name() == v {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFaceIndex, v)
}

// CubeState is the 54-character label encoding of all facelets, face by face
// in slot order.
type CubeState string

// BuildState concatenates the six faces in slot order. Every face must have
// exactly nine recognized colors.
func BuildState(faces [FaceCount][]Color) (CubeState, error) {
	var b strings.Builder
	b.Grow(StateLength)

	for i, face := range faces {
		slot := FaceSlot(i)
		if len(face) != FaceletsPerFace {
			return "", fmt.Errorf("%w: %s face has %d colors, expected %d",
				ErrInvalidColorCount, slot, len(face), FaceletsPerFace)
		}
		for j, c := range face {
			if !c.Valid() {
				return "", fmt.Errorf("%w: %s face facelet %d", ErrUnknownColor, slot, j+1)
			}
			b.WriteByte(c.Label())
		}
	}

	return CubeState(b.String()), nil
}

// Counts returns how often each color label occurs. Unknown characters are
// counted under NoColor.
func (s CubeState) Counts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for i := 0; i < len(s); i++ {
		c, err := ColorFromLabel(s[i])
		if err != nil {
			c = NoColor
		}
		counts[c]++
	}
	return counts
}

// Validate checks that the state has 54 labels with exactly nine of each of
// the six colors. It does not check that the arrangement is reachable.
func (s CubeState) Validate() error {
	if len(s) != StateLength {
		return fmt.Errorf("%w: got %d, expected %d", ErrInvalidCubeStateLength, len(s), StateLength)
	}

	counts := s.Counts()
	if n := counts[NoColor]; n > 0 {
		return fmt.Errorf("%w: %d unrecognized labels in cube state", ErrUnknownColor, n)
	}
	for _, c := range Colors {
		if counts[c] != FaceletsPerFace {
			return fmt.Errorf("%w: %s appears %d times, expected %d",
				ErrInvalidColorCount, c.Name(), counts[c], FaceletsPerFace)
		}
	}

	return nil
}

// Face returns the nine labels of one slot. It panics if the state is not
// StateLength long.
func (s CubeState) Face(slot FaceSlot) string {
	start := int(slot) * FaceletsPerFace
	return string(s[start : start+FaceletsPerFace])
}

func (s CubeState) String() string {
	return string(s)
}
