package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/config"
	"github.com/SeamusWaldron/cuberobot/internal/storage"
	"github.com/SeamusWaldron/cuberobot/internal/workspace"
)

// useTempHome points the workspace and config at a temporary home directory.
func useTempHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	oldCfg, oldDB := cfg, dbPath
	cfg = config.Default()
	t.Cleanup(func() {
		cfg, dbPath = oldCfg, oldDB
	})
}

// seedWorkspace stores a fully entered solved cube and a previous solution ID.
func seedWorkspace(t *testing.T, lastSolutionID string) {
	t.Helper()
	sf, err := workspace.NewDefaultStateFile()
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
	if err := sf.Store(s); err != nil {
		t.Fatal(err)
	}
	if err := sf.SetLastSolution(lastSolutionID); err != nil {
		t.Fatal(err)
	}
}

func solveWith(t *testing.T, moves string) {
	t.Helper()
	if err := solveCmd.Flags().Set("solution", moves); err != nil {
		t.Fatal(err)
	}
	solveCmd.SetContext(context.Background())
	if err := runSolve(solveCmd, nil); err != nil {
		t.Fatalf("runSolve: %v", err)
	}
}

func reloadWorkspace(t *testing.T) (*workspace.StateFile, *cuberobot.Session) {
	t.Helper()
	sf, err := workspace.NewDefaultStateFile()
	if err != nil {
		t.Fatal(err)
	}
	s, err := sf.Session()
	if err != nil {
		t.Fatal(err)
	}
	return sf, s
}

func TestSolveWithoutHistoryForgetsPreviousSolutionID(t *testing.T) {
	useTempHome(t)
	seedWorkspace(t, "previous-solution-id")

	// A regular file where a directory is needed makes the database unopenable.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	dbPath = filepath.Join(blocker, "cuberobot.db")

	solveWith(t, "RU")

	sf, s := reloadWorkspace(t)
	if got, err := s.Solution(); err != nil || got != "RU" {
		t.Errorf("Solution = %q, %v", got, err)
	}
	if id := sf.LastSolutionID(); id != "" {
		t.Errorf("LastSolutionID = %q, want empty", id)
	}
}

func TestSolveRecordsHistory(t *testing.T) {
	useTempHome(t)
	seedWorkspace(t, "previous-solution-id")
	dbPath = filepath.Join(t.TempDir(), "cuberobot.db")

	solveWith(t, "R U R' U'")

	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	last, err := storage.NewSolutionRepository(db).GetLast()
	if err != nil || last == nil {
		t.Fatalf("GetLast = %v, %v", last, err)
	}
	if last.Moves != "RUR'U'" || last.Inverse != "URU'R'" {
		t.Errorf("stored %q / %q", last.Moves, last.Inverse)
	}

	sf, _ := reloadWorkspace(t)
	if sf.LastSolutionID() != last.SolutionID {
		t.Errorf("LastSolutionID = %q, want %q", sf.LastSolutionID(), last.SolutionID)
	}
}

func TestResetClearsSessionKeepsPort(t *testing.T) {
	useTempHome(t)
	seedWorkspace(t, "some-id")

	sf, s := reloadWorkspace(t)
	if err := s.SetSolution("RU", cuberobot.Kociemba); err != nil {
		t.Fatal(err)
	}
	if err := sf.Store(s); err != nil {
		t.Fatal(err)
	}
	if err := sf.SetLastPort("/dev/ttyACM0"); err != nil {
		t.Fatal(err)
	}

	if err := runReset(resetCmd, nil); err != nil {
		t.Fatalf("runReset: %v", err)
	}

	sf, s = reloadWorkspace(t)
	if _, err := s.Solution(); err == nil {
		t.Error("solution survived reset")
	}
	if s.FaceComplete(cuberobot.SlotYellow) {
		t.Error("faces survived reset")
	}
	if sf.LastSolutionID() != "" {
		t.Errorf("LastSolutionID = %q after reset", sf.LastSolutionID())
	}
	if sf.State().LastPort != "/dev/ttyACM0" {
		t.Errorf("LastPort = %q after reset", sf.State().LastPort)
	}
}

func TestHistoryDeleteForgetsCurrentSolution(t *testing.T) {
	useTempHome(t)
	dbPath = filepath.Join(t.TempDir(), "cuberobot.db")

	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	id, err := storage.NewSolutionRepository(db).Create(
		"state", "Kociemba", "RU", "U'R'", 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := storage.NewTransmissionRepository(db).Create(
		id, storage.KindSolution, "RU", "done", "", time.Second); err != nil {
		t.Fatal(err)
	}
	db.Close()

	seedWorkspace(t, id)

	if err := runHistoryTransmissions(historyTransmissionsCmd, nil); err != nil {
		t.Fatalf("runHistoryTransmissions: %v", err)
	}
	if err := runHistoryDelete(historyDeleteCmd, []string{id}); err != nil {
		t.Fatalf("runHistoryDelete: %v", err)
	}

	db, err = storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if s, _ := storage.NewSolutionRepository(db).Get(id); s != nil {
		t.Error("solution still stored")
	}
	recent, err := storage.NewTransmissionRepository(db).ListRecent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("%d transmissions left after delete", len(recent))
	}

	sf, _ := reloadWorkspace(t)
	if sf.LastSolutionID() != "" {
		t.Errorf("LastSolutionID = %q after delete", sf.LastSolutionID())
	}

	if err := runHistoryDelete(historyDeleteCmd, []string{id}); err == nil {
		t.Error("deleting a missing solution should fail")
	}
}
