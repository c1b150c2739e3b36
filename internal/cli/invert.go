package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
)

var invertCheck bool

var invertCmd = &cobra.Command{
	Use:   "invert <moves>...",
	Short: "Print the inverse of a move sequence",
	Long: `Print the sequence that undoes the given moves, in the compact form the rig
expects. Moves may be concatenated (RU'F2) or separated by spaces.

Use --check to apply both sequences to a simulated cube and confirm they
cancel out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInvert,
}

func init() {
	rootCmd.AddCommand(invertCmd)
	invertCmd.Flags().BoolVar(&invertCheck, "check", false, "Verify the inverse on a simulated cube")
}

func runInvert(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	inverse, err := cuberobot.Invert(input)
	if err != nil {
		return err
	}
	fmt.Println(inverse)

	if !invertCheck {
		return nil
	}

	moves, _ := cuberobot.ParseMoves(input)
	undo, _ := cuberobot.ParseMoves(inverse)

	c := cuberobot.NewCube()
	c.ApplyMoves(moves)
	scrambled := !c.IsSolved()
	c.ApplyMoves(undo)

	if !c.IsSolved() {
		return fmt.Errorf("inverse check failed: cube not restored\n%s", c.String())
	}
	if scrambled {
		fmt.Println(statusStyle.Render("check: moves then inverse restore the cube"))
	} else {
		fmt.Println(statusStyle.Render("check: sequence leaves the cube unchanged"))
	}
	return nil
}
