package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
)

var faceCmd = &cobra.Command{
	Use:   "face",
	Short: "Enter and inspect face colors",
	Long: `Commands for entering the nine facelet colors of each face.

Faces are named by their center color, or by slot number:
  0 yellow   1 blue   2 red   3 green   4 orange   5 white

Colors may be given as palette hex values (#ff8000), labels (o) or names
(orange).`,
}

var faceSetCmd = &cobra.Command{
	Use:   "set <face> <color> x9",
	Short: "Set the nine colors of a face",
	Long: `Set the nine colors of one face, row by row from the top left.

Example:
  cuberobot face set red r r w r r b r r r
  cuberobot face set 2 "#ff0000" "#ff0000" "#ffffff" ...`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFaceSet,
}

var faceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the entered faces",
	RunE:  runFaceShow,
}

var faceClearCmd = &cobra.Command{
	Use:   "clear [face]",
	Short: "Clear one face, or all faces",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFaceClear,
}

func init() {
	rootCmd.AddCommand(faceCmd)
	faceCmd.AddCommand(faceSetCmd)
	faceCmd.AddCommand(faceShowCmd)
	faceCmd.AddCommand(faceClearCmd)
}

func runFaceSet(cmd *cobra.Command, args []string) error {
	slot, err := cuberobot.ParseFaceSlot(args[0])
	if err != nil {
		return err
	}

	sf, session, err := loadSession()
	if err != nil {
		return err
	}

	if err := session.SetFaceHex(slot, args[1:]); err != nil {
		return err
	}
	if err := sf.Store(session); err != nil {
		return err
	}

	fmt.Printf("%s face set\n", slot)
	fmt.Println(renderFace(session.FaceColors(slot)))
	return nil
}

func runFaceShow(cmd *cobra.Command, args []string) error {
	_, session, err := loadSession()
	if err != nil {
		return err
	}

	complete := 0
	for _, slot := range cuberobot.Slots {
		status := statusStyle.Render("(missing)")
		if session.FaceComplete(slot) {
			status = ""
			complete++
		}
		fmt.Printf("%d %s %s\n", int(slot), titleStyle.Render(slot.String()), status)
		fmt.Println(renderFace(session.FaceColors(slot)))
		fmt.Println()
	}
	fmt.Printf("%d of %d faces entered\n", complete, cuberobot.FaceCount)
	return nil
}

func runFaceClear(cmd *cobra.Command, args []string) error {
	sf, session, err := loadSession()
	if err != nil {
		return err
	}

	slots := cuberobot.Slots
	if len(args) == 1 {
		slot, err := cuberobot.ParseFaceSlot(args[0])
		if err != nil {
			return err
		}
		slots = []cuberobot.FaceSlot{slot}
	}

	for _, slot := range slots {
		if err := session.ClearFace(slot); err != nil {
			return err
		}
	}
	if err := sf.Store(session); err != nil {
		return err
	}

	fmt.Printf("Cleared %d face(s)\n", len(slots))
	return nil
}
