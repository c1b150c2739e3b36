package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cuberobot"
)

func TestNewStateFileMissing(t *testing.T) {
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewStateFile: %v", err)
	}

	s, err := sf.Session()
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != "" {
		t.Errorf("fresh session has state %q", s.State())
	}
}

func TestStoreAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	sf, err := NewStateFile(path)
	if err != nil {
		t.Fatal(err)
	}

	s := cuberobot.NewSession()
	for _, slot := range cuberobot.Slots {
		face := make([]cuberobot.Color, cuberobot.FaceletsPerFace)
		for i := range face {
			face[i] = slot.Center()
		}
		if err := s.SetFaceColors(slot, face); err != nil {
			t.Fatal(err)
		}
	}
	solver := cuberobot.SolverFunc(func(context.Context, cuberobot.CubeState, cuberobot.Algorithm) (string, error) {
		return "R U", nil
	})
	if _, err := s.Solve(context.Background(), solver, cuberobot.Kociemba); err != nil {
		t.Fatal(err)
	}

	if err := sf.Store(s); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := sf.SetLastSolution("abc-123"); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewStateFile(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.LastSolutionID() != "abc-123" {
		t.Errorf("LastSolutionID = %q", reloaded.LastSolutionID())
	}

	restored, err := reloaded.Session()
	if err != nil {
		t.Fatal(err)
	}
	if restored.State() != s.State() {
		t.Errorf("state = %q, want %q", restored.State(), s.State())
	}
	reversed, err := restored.ReversedMoves()
	if err != nil || reversed != "U'R'" {
		t.Errorf("ReversedMoves = %q, %v", reversed, err)
	}
}

func TestResetKeepsPort(t *testing.T) {
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := sf.SetLastPort("/dev/ttyACM0"); err != nil {
		t.Fatal(err)
	}
	if err := sf.SetLastSolution("id"); err != nil {
		t.Fatal(err)
	}

	s := cuberobot.NewSession()
	if err := s.SetSolution("RU", cuberobot.Kociemba); err != nil {
		t.Fatal(err)
	}
	if err := sf.Store(s); err != nil {
		t.Fatal(err)
	}

	if err := sf.Reset(s); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Solution(); err == nil {
		t.Error("session still has a solution after Reset")
	}
	if sf.LastSolutionID() != "" {
		t.Errorf("LastSolutionID = %q after Reset", sf.LastSolutionID())
	}
	if sf.State().LastPort != "/dev/ttyACM0" {
		t.Errorf("LastPort = %q after Reset", sf.State().LastPort)
	}

	reloaded, err := NewStateFile(sf.Path())
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.State().Session.Solution != nil {
		t.Error("reset not saved")
	}
}

func TestCorruptStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStateFile(path); err == nil {
		t.Error("expected an error for a corrupt state file")
	}
}
