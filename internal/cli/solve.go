package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/solver"
	"github.com/SeamusWaldron/cuberobot/internal/storage"
)

var (
	solveAlgorithm string
	solveFixed     string
	solveTimeout   time.Duration
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Build the cube state from the entered faces",
	Long: `Convert the entered face colors into the 54-character cube state and check
that every color appears exactly nine times.`,
	RunE: runConvert,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the entered cube",
	Long: `Convert the entered colors (if not done yet), ask the solver for a solution
and store it in history.

Algorithms: Beginner, CFOP, Kociemba (default from config).

The solver is the python3 rubik_solver package unless solver_command is set in
the config file. Use --solution to skip the solver and record a known sequence.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveAlgorithm, "algorithm", "a", "", "Solving algorithm (Beginner, CFOP, Kociemba)")
	solveCmd.Flags().StringVar(&solveFixed, "solution", "", "Use this move sequence instead of running the solver")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 60*time.Second, "Maximum time to wait for the solver")
}

func runConvert(cmd *cobra.Command, args []string) error {
	sf, session, err := loadSession()
	if err != nil {
		return err
	}

	state, err := session.ConvertColors()
	if err != nil {
		return err
	}
	if err := sf.Store(session); err != nil {
		return err
	}

	fmt.Printf("Cube state: %s\n", state)
	for _, slot := range cuberobot.Slots {
		fmt.Printf("  %-7s %s\n", slot, state.Face(slot))
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	algorithm := cfg.AlgorithmValue()
	if solveAlgorithm != "" {
		a, err := cuberobot.ParseAlgorithm(solveAlgorithm)
		if err != nil {
			return err
		}
		algorithm = a
	}

	sf, session, err := loadSession()
	if err != nil {
		return err
	}

	var s cuberobot.Solver = solver.NewCommand(cfg.SolverCommand, logger)
	if cmd.Flags().Changed("solution") {
		s = solver.Fixed(solveFixed)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	start := time.Now()
	solution, err := session.Solve(ctx, s, algorithm)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	reversed, err := session.ReversedMoves()
	if err != nil {
		return err
	}

	// History is best effort; the solution is already in the workspace.
	// Without a history row the previous solution ID no longer applies.
	var solutionID string
	db, err := openDB()
	if err != nil {
		logger.Warn("history unavailable", "error", err)
	} else {
		defer db.Close()
		solutionID, err = storage.NewSolutionRepository(db).Create(
			string(session.State()), string(algorithm), solution, reversed, len(session.SolutionMoves()))
		if err != nil {
			logger.Warn("failed to record solution", "error", err)
			solutionID = ""
		}
	}
	if err := sf.SetLastSolution(solutionID); err != nil {
		return err
	}

	if err := sf.Store(session); err != nil {
		return err
	}

	moves := session.SolutionMoves()
	fmt.Printf("Algorithm: %s (%s)\n", algorithm, formatDuration(elapsed))
	if len(moves) == 0 {
		fmt.Println("Cube is already solved")
		return nil
	}
	fmt.Printf("Solution (%d moves): %s\n", len(moves), moveStyle.Render(cuberobot.FormatMoves(moves)))
	fmt.Printf("Reversed: %s\n", cuberobot.FormatMoves(cuberobot.InvertMoves(moves)))
	fmt.Println()
	fmt.Println("Run it on the rig with: cuberobot send")
	return nil
}
