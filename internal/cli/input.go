package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cuberobot"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Enter all six faces in an interactive grid",
	Long: `Open a terminal grid for entering the facelet colors of all six faces.

Keyboard shortcuts:
  w r y g o b      - Color the selected facelet and move on
  arrows / hjkl    - Move the cursor
  tab / shift+tab  - Next / previous face
  0-5              - Jump to a face slot
  x / backspace    - Clear the selected facelet
  enter            - Save and quit
  q / Esc          - Quit without saving`,
	RunE: runInput,
}

func init() {
	rootCmd.AddCommand(inputCmd)
}

type inputModel struct {
	faces  [cuberobot.FaceCount][cuberobot.FaceletsPerFace]cuberobot.Color
	slot   int
	cursor int

	saved    bool
	quitting bool
}

func newInputModel(session *cuberobot.Session) *inputModel {
	m := &inputModel{}
	for _, slot := range cuberobot.Slots {
		existing := session.FaceColors(slot)
		for i := range m.faces[slot] {
			if i < len(existing) {
				m.faces[slot][i] = existing[i]
			}
		}
		// The center facelet names the face.
		m.faces[slot][4] = slot.Center()
	}
	return m
}

func (m *inputModel) Init() tea.Cmd {
	return nil
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saved = true
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down", "j":
		if m.cursor < 6 {
			m.cursor += 3
		}
	case "left", "h":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case "tab":
		m.slot = (m.slot + 1) % cuberobot.FaceCount
		m.cursor = 0
	case "shift+tab":
		m.slot = (m.slot + cuberobot.FaceCount - 1) % cuberobot.FaceCount
		m.cursor = 0
	case "0", "1", "2", "3", "4", "5":
		m.slot = int(k[0] - '0')
		m.cursor = 0
	case "x", "backspace":
		if m.cursor != 4 {
			m.faces[m.slot][m.cursor] = cuberobot.NoColor
		}
	default:
		if len(k) == 1 {
			if c, err := cuberobot.ColorFromLabel(k[0]); err == nil {
				m.setColor(c)
			}
		}
	}

	return m, nil
}

// setColor colors the selected facelet and advances, skipping the center.
func (m *inputModel) setColor(c cuberobot.Color) {
	if m.cursor != 4 {
		m.faces[m.slot][m.cursor] = c
	}
	m.cursor++
	if m.cursor == 4 {
		m.cursor++
	}
	if m.cursor >= cuberobot.FaceletsPerFace {
		m.cursor = 0
		m.slot = (m.slot + 1) % cuberobot.FaceCount
	}
}

func (m *inputModel) faceComplete(slot int) bool {
	for _, c := range m.faces[slot] {
		if !c.Valid() {
			return false
		}
	}
	return true
}

func (m *inputModel) counts() map[cuberobot.Color]int {
	counts := make(map[cuberobot.Color]int)
	for _, face := range m.faces {
		for _, c := range face {
			counts[c]++
		}
	}
	return counts
}

func cell(c cuberobot.Color, selected bool) string {
	label := "·"
	style := lipgloss.NewStyle()
	if c.Valid() {
		label = strings.ToUpper(string(c.Label()))
		fg := "0"
		if c == cuberobot.Blue || c == cuberobot.Red {
			fg = "15"
		}
		style = style.Background(lipgloss.Color(c.Hex())).Foreground(lipgloss.Color(fg))
	}
	if selected {
		return style.Bold(true).Render("[" + label + "]")
	}
	return style.Render(" " + label + " ")
}

func (m *inputModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Color Input"))
	b.WriteString("\n\n")

	// Face tabs
	var tabs []string
	for _, slot := range cuberobot.Slots {
		name := fmt.Sprintf("%d %s", int(slot), slot)
		if m.faceComplete(int(slot)) {
			name += " ✓"
		}
		if int(slot) == m.slot {
			tabs = append(tabs, titleStyle.Render("["+name+"]"))
		} else {
			tabs = append(tabs, statusStyle.Render(" "+name+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	// Grid
	for row := 0; row < 3; row++ {
		b.WriteString("  ")
		for col := 0; col < 3; col++ {
			i := row*3 + col
			b.WriteString(cell(m.faces[m.slot][i], i == m.cursor))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Color counts; a valid cube has nine of each.
	counts := m.counts()
	var parts []string
	for _, c := range cuberobot.Colors {
		s := fmt.Sprintf("%c:%d", c.Label(), counts[c])
		if counts[c] > cuberobot.FaceletsPerFace {
			s = errorStyle.Render(s)
		} else if counts[c] == cuberobot.FaceletsPerFace {
			s = moveStyle.Render(s)
		}
		parts = append(parts, s)
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("w/r/y/g/o/b color • arrows move • tab next face • enter save • q quit"))
	b.WriteString("\n")

	return b.String()
}

func runInput(cmd *cobra.Command, args []string) error {
	sf, session, err := loadSession()
	if err != nil {
		return err
	}

	model := newInputModel(session)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if !model.saved {
		fmt.Println("Input discarded")
		return nil
	}

	complete := 0
	for _, slot := range cuberobot.Slots {
		if !model.faceComplete(int(slot)) {
			continue
		}
		if err := session.SetFaceColors(slot, model.faces[slot][:]); err != nil {
			return err
		}
		complete++
	}
	if err := sf.Store(session); err != nil {
		return err
	}

	fmt.Printf("Saved %d complete face(s)\n", complete)
	if complete == cuberobot.FaceCount {
		fmt.Println("Next: cuberobot solve")
	}
	return nil
}
