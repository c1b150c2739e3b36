package cuberobot

import (
	"errors"
	"strings"
	"testing"
)

func solvedFaces() [FaceCount][]Color {
	var faces [FaceCount][]Color
	for _, slot := range Slots {
		face := make([]Color, FaceletsPerFace)
		for i := range face {
			face[i] = slot.Center()
		}
		faces[slot] = face
	}
	return faces
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", White},
		{"#FF0000", Red},
		{"#ffff00", Yellow},
		{"#00ff00", Green},
		{"#ff8000", Orange},
		{"#0000ff", Blue},
		{"o", Orange},
		{"Blue", Blue},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got.Name(), tt.want.Name())
		}
	}
}

func TestParseColorUnknown(t *testing.T) {
	for _, in := range []string{"", "#FFA500", "#123456", "purple", "x"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", in, err)
		}
	}
}

func TestColorLabelsAreDistinct(t *testing.T) {
	seen := map[byte]bool{}
	for _, c := range Colors {
		if seen[c.Label()] {
			t.Errorf("label %q used twice", c.Label())
		}
		seen[c.Label()] = true

		back, err := ColorFromLabel(c.Label())
		if err != nil || back != c {
			t.Errorf("ColorFromLabel(%q) = %v, %v", c.Label(), back, err)
		}
	}
	if len(seen) != 6 {
		t.Errorf("got %d labels, want 6", len(seen))
	}
}

func TestBuildStateSolved(t *testing.T) {
	state, err := BuildState(solvedFaces())
	if err != nil {
		t.Fatalf("BuildState: %v", err)
	}

	want := strings.Repeat("y", 9) + strings.Repeat("b", 9) + strings.Repeat("r", 9) +
		strings.Repeat("g", 9) + strings.Repeat("o", 9) + strings.Repeat("w", 9)
	if string(state) != want {
		t.Errorf("BuildState = %q, want %q", state, want)
	}
	if err := state.Validate(); err != nil {
		t.Errorf("solved state should validate: %v", err)
	}
	if state.Face(SlotRed) != strings.Repeat("r", 9) {
		t.Errorf("Face(SlotRed) = %q", state.Face(SlotRed))
	}
}

func TestBuildStateIncompleteFace(t *testing.T) {
	faces := solvedFaces()
	faces[SlotGreen] = faces[SlotGreen][:4]

	_, err := BuildState(faces)
	if !errors.Is(err, ErrInvalidColorCount) {
		t.Fatalf("error = %v, want ErrInvalidColorCount", err)
	}
	if !strings.Contains(err.Error(), "green") {
		t.Errorf("error %q should name the green face", err)
	}
}

func TestValidateSingleColor(t *testing.T) {
	err := CubeState(strings.Repeat("w", 54)).Validate()
	if !errors.Is(err, ErrInvalidColorCount) {
		t.Errorf("54 x w: error = %v, want ErrInvalidColorCount", err)
	}
}

func TestValidateLength(t *testing.T) {
	for _, s := range []string{"", "wrygob", strings.Repeat("wrygob", 10)} {
		if err := CubeState(s).Validate(); !errors.Is(err, ErrInvalidCubeStateLength) {
			t.Errorf("len %d: error = %v, want ErrInvalidCubeStateLength", len(s), err)
		}
	}
}

func TestValidateUnknownLabel(t *testing.T) {
	s := []byte(strings.Repeat("wrygob", 9))
	s[10] = 'x'
	if err := CubeState(s).Validate(); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("error = %v, want ErrUnknownColor", err)
	}
}

func TestValidateScrambledCounts(t *testing.T) {
	// A real scramble from the original rig: nine of each label.
	state := CubeState("wbwbygrygoogwbwgrbybwgrgowwoygrgobybrwbyooyooyrrbwrygr")
	if err := state.Validate(); err != nil {
		t.Errorf("scrambled state should validate: %v", err)
	}
}

func TestParseFaceSlot(t *testing.T) {
	tests := []struct {
		in   string
		want FaceSlot
	}{
		{"0", SlotYellow},
		{"5", SlotWhite},
		{"red", SlotRed},
		{"Orange", SlotOrange},
	}
	for _, tt := range tests {
		got, err := ParseFaceSlot(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFaceSlot(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	for _, in := range []string{"6", "-1", "purple", ""} {
		if _, err := ParseFaceSlot(in); !errors.Is(err, ErrInvalidFaceIndex) {
			t.Errorf("ParseFaceSlot(%q) error = %v, want ErrInvalidFaceIndex", in, err)
		}
	}
}
