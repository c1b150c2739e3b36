package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/storage"
	"github.com/SeamusWaldron/cuberobot/internal/workspace"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if dbPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(dbPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func openWorkspace() (*workspace.StateFile, error) {
	sf, err := workspace.NewDefaultStateFile()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return sf, nil
}

// loadSession restores the session saved by the previous command.
func loadSession() (*workspace.StateFile, *cuberobot.Session, error) {
	sf, err := openWorkspace()
	if err != nil {
		return nil, nil, err
	}
	s, err := sf.Session(
		cuberobot.WithLogger(logger),
		cuberobot.WithAlgorithm(cfg.AlgorithmValue()),
	)
	if err != nil {
		return nil, nil, err
	}
	return sf, s, nil
}

// swatch renders one facelet as a colored block.
func swatch(c cuberobot.Color) string {
	if !c.Valid() {
		return statusStyle.Render(" · ")
	}
	fg := "0"
	if c == cuberobot.Blue || c == cuberobot.Red {
		fg = "15"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Render(" " + strings.ToUpper(string(c.Label())) + " ")
}

// renderFace draws a 3x3 face grid.
func renderFace(colors []cuberobot.Color) string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col
			c := cuberobot.NoColor
			if i < len(colors) {
				c = colors[i]
			}
			b.WriteString(swatch(c))
		}
		if row < 2 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
