package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/storage"
)

var (
	historyLimit int
	showLast     bool
	showID       string
	showLoad     bool
	txLimit      int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past solutions and rig transmissions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solutions",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one solution and what was sent to the rig",
	Long: `Display a stored solution with its cube state, inverse and transmissions.

Use --last for the most recent solution, or --id for a specific one. With
--load the solution becomes the current one, so 'cuberobot send' replays it.`,
	RunE: runHistoryShow,
}

var historyTransmissionsCmd = &cobra.Command{
	Use:   "transmissions",
	Short: "List recent transmissions to the rig",
	RunE:  runHistoryTransmissions,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solution-id>",
	Short: "Delete a solution and its transmissions",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solutions to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solution")
	historyShowCmd.Flags().StringVar(&showID, "id", "", "Solution ID")
	historyShowCmd.Flags().BoolVar(&showLoad, "load", false, "Make this the current solution")
	historyShowCmd.MarkFlagsMutuallyExclusive("last", "id")

	historyCmd.AddCommand(historyTransmissionsCmd)
	historyTransmissionsCmd.Flags().IntVar(&txLimit, "limit", 20, "Maximum number of transmissions to display")

	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solutions, err := storage.NewSolutionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solutions) == 0 {
		fmt.Println("No solutions recorded yet")
		fmt.Println("Solve a cube with: cuberobot solve")
		return nil
	}

	fmt.Printf("Recent solutions (showing %d):\n", len(solutions))
	fmt.Println()
	fmt.Printf("%-36s  %-19s  %-9s  %-5s  %s\n", "ID", "Created", "Algorithm", "Moves", "Solution")
	fmt.Println("------------------------------------  -------------------  ---------  -----  --------")

	for _, s := range solutions {
		moves := s.Moves
		if len(moves) > 40 {
			moves = moves[:37] + "..."
		}
		fmt.Printf("%-36s  %-19s  %-9s  %-5d  %s\n",
			s.SolutionID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Algorithm,
			s.MoveCount,
			moves,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if !showLast && showID == "" {
		return fmt.Errorf("specify --last or --id")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolutionRepository(db)
	var s *storage.Solution
	if showLast {
		s, err = repo.GetLast()
	} else {
		s, err = repo.Get(showID)
	}
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("solution not found")
	}

	fmt.Println(titleStyle.Render("Solution " + s.SolutionID))
	fmt.Printf("Created:    %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Algorithm:  %s\n", s.Algorithm)
	fmt.Printf("Cube state: %s\n", s.CubeState)
	fmt.Printf("Moves (%d): %s\n", s.MoveCount, moveStyle.Render(s.Moves))
	fmt.Printf("Inverse:    %s\n", s.Inverse)

	transmissions, err := storage.NewTransmissionRepository(db).ListBySolution(s.SolutionID)
	if err != nil {
		return err
	}
	fmt.Println()
	if len(transmissions) == 0 {
		fmt.Println(statusStyle.Render("Never sent to the rig"))
	}
	for _, t := range transmissions {
		result := "ok"
		if t.Response != nil {
			result = *t.Response
		}
		if t.Error != nil {
			result = errorStyle.Render(*t.Error)
		}
		fmt.Printf("  %s  %-8s  %6dms  %s\n",
			t.SentAt.Local().Format("2006-01-02 15:04:05"), t.Kind, t.DurationMs, result)
	}

	if !showLoad {
		return nil
	}

	sf, session, err := loadSession()
	if err != nil {
		return err
	}
	if err := session.SetSolution(s.Moves, cuberobot.Algorithm(s.Algorithm)); err != nil {
		return err
	}
	if err := sf.Store(session); err != nil {
		return err
	}
	if err := sf.SetLastSolution(s.SolutionID); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Loaded as current solution")
	return nil
}

func runHistoryTransmissions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	transmissions, err := storage.NewTransmissionRepository(db).ListRecent(txLimit)
	if err != nil {
		return err
	}
	if len(transmissions) == 0 {
		fmt.Println("Nothing sent to the rig yet")
		return nil
	}

	fmt.Printf("%-19s  %-8s  %-8s  %-8s  %s\n", "Sent", "Kind", "Solution", "Duration", "Result")
	fmt.Println("-------------------  --------  --------  --------  ------")
	for _, t := range transmissions {
		solution := "-"
		if t.SolutionID != nil {
			solution = *t.SolutionID
			if len(solution) > 8 {
				solution = solution[:8]
			}
		}
		result := "ok"
		if t.Response != nil {
			result = *t.Response
		}
		if t.Error != nil {
			result = errorStyle.Render(*t.Error)
		}
		fmt.Printf("%-19s  %-8s  %-8s  %8s  %s\n",
			t.SentAt.Local().Format("2006-01-02 15:04:05"),
			t.Kind,
			solution,
			formatDuration(time.Duration(t.DurationMs)*time.Millisecond),
			result,
		)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolutionRepository(db)
	s, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("solution not found")
	}
	if err := repo.Delete(s.SolutionID); err != nil {
		return err
	}

	sf, err := openWorkspace()
	if err != nil {
		return err
	}
	if sf.LastSolutionID() == s.SolutionID {
		if err := sf.SetLastSolution(""); err != nil {
			return err
		}
	}

	logger.Info("solution deleted", "solution_id", s.SolutionID)
	fmt.Printf("Deleted solution %s\n", s.SolutionID)
	return nil
}
