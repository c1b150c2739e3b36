package solver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/SeamusWaldron/cuberobot"
)

const solvedState = cuberobot.CubeState("yyyyyyyyybbbbbbbbbrrrrrrrrrgggggggggooooooooowwwwwwwww")

func helperCommand() *Command {
	return &Command{
		Path: os.Args[0],
		Args: []string{"-test.run=TestHelperProcess", "--"},
		Env:  []string{"CUBEROBOT_WANT_HELPER_PROCESS=1"},
	}
}

// TestHelperProcess stands in for the external solver. It is not a real test.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("CUBEROBOT_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "expected state and algorithm, got %q\n", args)
		os.Exit(2)
	}
	state, algorithm := args[1], args[2]

	switch algorithm {
	case "Kociemba":
		fmt.Printf("[R, U, R', U'] %d\n", len(state))
	case "Beginner":
		fmt.Println("R U R' U'")
	case "fail":
		fmt.Fprintln(os.Stderr, "Traceback (most recent call last):\nValueError: invalid cube")
		os.Exit(1)
	case "empty":
	case "slow":
		time.Sleep(10 * time.Second)
	}
	os.Exit(0)
}

func TestCommandPassesStateAndAlgorithm(t *testing.T) {
	out, err := helperCommand().Solve(context.Background(), solvedState, cuberobot.Kociemba)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if out != "[R, U, R', U'] 54" {
		t.Errorf("output = %q", out)
	}
}

func TestCommandOutputParses(t *testing.T) {
	out, err := helperCommand().Solve(context.Background(), solvedState, cuberobot.Beginner)
	if err != nil {
		t.Fatal(err)
	}
	moves, err := cuberobot.ParseSolution(out)
	if err != nil {
		t.Fatalf("ParseSolution(%q): %v", out, err)
	}
	if got := cuberobot.CompactMoves(moves); got != "RUR'U'" {
		t.Errorf("moves = %q", got)
	}
}

func TestCommandFailure(t *testing.T) {
	_, err := helperCommand().Solve(context.Background(), solvedState, "fail")
	if !errors.Is(err, cuberobot.ErrSolverFailed) {
		t.Fatalf("error = %v, want ErrSolverFailed", err)
	}
	if !strings.Contains(err.Error(), "ValueError: invalid cube") {
		t.Errorf("error %q should carry the last stderr line", err)
	}
}

func TestCommandEmptyOutput(t *testing.T) {
	_, err := helperCommand().Solve(context.Background(), solvedState, "empty")
	if !errors.Is(err, cuberobot.ErrSolverFailed) {
		t.Errorf("error = %v, want ErrSolverFailed", err)
	}
}

func TestCommandHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := helperCommand().Solve(ctx, solvedState, "slow")
	if !errors.Is(err, cuberobot.ErrSolverFailed) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want ErrSolverFailed wrapping DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("cancellation took %v", elapsed)
	}
}

func TestCommandMissingBinary(t *testing.T) {
	c := &Command{Path: "/nonexistent/cuberobot-solver"}
	if _, err := c.Solve(context.Background(), solvedState, cuberobot.Kociemba); !errors.Is(err, cuberobot.ErrSolverFailed) {
		t.Errorf("error = %v, want ErrSolverFailed", err)
	}
}

func TestNewCommand(t *testing.T) {
	def := NewCommand(nil, nil)
	if def.Path != "python3" || len(def.Args) != 2 || def.Args[0] != "-c" {
		t.Errorf("default command = %s %q", def.Path, def.Args)
	}

	custom := NewCommand([]string{"/usr/local/bin/solve", "--fast"}, nil)
	if custom.Path != "/usr/local/bin/solve" || len(custom.Args) != 1 || custom.Args[0] != "--fast" {
		t.Errorf("custom command = %s %q", custom.Path, custom.Args)
	}
}

func TestFixed(t *testing.T) {
	out, err := Fixed("R2 F'").Solve(context.Background(), solvedState, cuberobot.CFOP)
	if err != nil || out != "R2 F'" {
		t.Errorf("Fixed.Solve = %q, %v", out, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fixed("R").Solve(ctx, solvedState, cuberobot.CFOP); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestSessionWithCommand(t *testing.T) {
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

	solution, err := s.Solve(context.Background(), helperCommand(), cuberobot.Beginner)
	if err != nil {
		t.Fatal(err)
	}
	if solution != "RUR'U'" {
		t.Errorf("solution = %q", solution)
	}
}
