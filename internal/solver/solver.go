// Package solver provides cuberobot.Solver implementations.
package solver

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/SeamusWaldron/cuberobot"
)

// rubikSolverScript prints the solution from the Python rubik_solver package.
// The state and algorithm arrive as argv[1] and argv[2].
const rubikSolverScript = `import sys
from rubik_solver import utils
print(" ".join(str(m) for m in utils.solve(sys.argv[1], sys.argv[2])))`

// Command runs an external program to solve the cube. The cube state and
// algorithm name are appended to Args; the program prints the moves on
// stdout.
type Command struct {
	Path string
	Args []string
	// Env is added to the current environment.
	Env []string

	Logger *slog.Logger
}

// DefaultCommand solves with the rubik_solver Python package.
func DefaultCommand() *Command {
	return &Command{
		Path: "python3",
		Args: []string{"-c", rubikSolverScript},
	}
}

// NewCommand builds a Command from an argv slice. An empty argv gives the
// default command.
func NewCommand(argv []string, logger *slog.Logger) *Command {
	c := DefaultCommand()
	if len(argv) > 0 {
		c.Path = argv[0]
		c.Args = append([]string(nil), argv[1:]...)
	}
	c.Logger = logger
	return c
}

// Solve runs the command and returns its trimmed stdout.
func (c *Command) Solve(ctx context.Context, state cuberobot.CubeState, algorithm cuberobot.Algorithm) (string, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	args := append(append([]string(nil), c.Args...), string(state), string(algorithm))
	cmd := exec.CommandContext(ctx, c.Path, args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logger.Debug("solver finished", "path", c.Path, "algorithm", string(algorithm), "duration", time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %s: %w", cuberobot.ErrSolverFailed, c.Path, ctxErr)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("%w: %s: %v", cuberobot.ErrSolverFailed, c.Path, err)
		}
		return "", fmt.Errorf("%w: %s: %v: %s", cuberobot.ErrSolverFailed, c.Path, err, lastLine(msg))
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("%w: %s printed no moves", cuberobot.ErrSolverFailed, c.Path)
	}
	return out, nil
}

// lastLine keeps the useful end of a Python traceback.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Fixed always answers with the same sequence. It is used for dry runs.
type Fixed string

// Solve returns f.
func (f Fixed) Solve(ctx context.Context, state cuberobot.CubeState, algorithm cuberobot.Algorithm) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(f), nil
}
