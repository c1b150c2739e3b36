package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/rig"
	"github.com/SeamusWaldron/cuberobot/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current workspace, history and rig ports",
	RunE:  runStatus,
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports",
	RunE:  runPorts,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the entered faces and the current solution",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(portsCmd)
	rootCmd.AddCommand(resetCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	sf, session, err := loadSession()
	if err != nil {
		return err
	}

	fmt.Println("Cube Solver Robot Status")
	fmt.Println("========================")
	fmt.Println()

	// Workspace
	complete := 0
	for _, slot := range cuberobot.Slots {
		if session.FaceComplete(slot) {
			complete++
		}
	}
	fmt.Printf("Faces entered: %d of %d\n", complete, cuberobot.FaceCount)
	if state := session.State(); state != "" {
		fmt.Printf("Cube state: %s\n", state)
	} else {
		fmt.Println("Cube state: not converted")
	}
	if solution, err := session.Solution(); err == nil {
		fmt.Printf("Solution: %s (%s)\n", moveStyle.Render(solution), session.Algorithm())
	} else {
		fmt.Println("Solution: none")
	}

	fmt.Println()

	// Database info
	path := dbPath
	if path == "" {
		path, _ = storage.DefaultDBPath()
	}
	fmt.Printf("Database: %s\n", path)

	db, err := openDB()
	if err == nil {
		defer db.Close()
		repo := storage.NewSolutionRepository(db)
		if last, err := repo.GetLast(); err == nil && last != nil {
			fmt.Printf("Last solution: %s\n", last.CreatedAt.Local().Format(time.RFC3339))
		}
		if n, err := repo.Count(); err == nil {
			fmt.Printf("Total solutions: %d\n", n)
		}
	}

	fmt.Println()

	// Rig
	fmt.Printf("Rig port: %s at %d baud\n", cfg.Serial.Port, cfg.Serial.BaudRate)
	if last := sf.State().LastPort; last != "" && last != cfg.Serial.Port {
		fmt.Printf("Last working port: %s\n", last)
	}

	ports, err := rig.Ports()
	if err != nil {
		fmt.Printf("Port scan error: %v\n", err)
		return nil
	}
	found := false
	for _, p := range ports {
		if p.Name == cfg.Serial.Port {
			found = true
		}
	}
	if !found {
		fmt.Println(errorStyle.Render("Configured port not present"))
		fmt.Println()
		fmt.Println("Tips:")
		fmt.Println("  - Check the Arduino USB cable")
		fmt.Println("  - Run 'cuberobot ports' to list available ports")
		fmt.Println("  - Set the port with --port or 'cuberobot config init'")
	}

	return nil
}

func runPorts(cmd *cobra.Command, args []string) error {
	ports, err := rig.Ports()
	if err != nil {
		return fmt.Errorf("failed to list ports: %w", err)
	}

	if len(ports) == 0 {
		fmt.Println("No serial ports found")
		return nil
	}

	fmt.Printf("Found %d port(s):\n", len(ports))
	for _, p := range ports {
		line := "  - " + p.Name
		if p.USB {
			line += fmt.Sprintf(" (USB %s:%s", p.VID, p.PID)
			if p.Product != "" {
				line += ", " + p.Product
			}
			line += ")"
		}
		if p.LikelyArduino() {
			line += " " + moveStyle.Render("[arduino]")
		}
		if p.Name == cfg.Serial.Port {
			line += " " + titleStyle.Render("[configured]")
		}
		fmt.Println(line)
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	sf, session, err := loadSession()
	if err != nil {
		return err
	}
	if err := sf.Reset(session); err != nil {
		return err
	}
	logger.Info("workspace reset")
	fmt.Println("Faces, cube state and solution cleared")
	return nil
}
