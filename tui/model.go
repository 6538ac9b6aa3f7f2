package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SvenDH/go-card-hand/hand"
	"github.com/SvenDH/go-card-hand/ui"
)

const help = "drag to reorder • double-click to cycle status • esc cancels a drag • q quits"

// Model renders a hand view in the terminal. One terminal cell is one unit of
// the view's geometry.
type Model struct {
	view   *ui.HandView
	styles Styles
	now    func() time.Time
}

func New(view *ui.HandView) Model {
	return Model{view: view, styles: DefaultStyles(), now: time.Now}
}

// Run starts a full-screen program with mouse motion reporting.
func Run(view *ui.HandView) error {
	p := tea.NewProgram(New(view), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.view.Cancel()
		}
	case tea.MouseMsg:
		x, y := float64(msg.X), float64(msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.view.Press(x, y)
			}
		case tea.MouseActionMotion:
			m.view.Move(x, y)
		case tea.MouseActionRelease:
			m.view.Release(x, y, m.now())
		}
	}
	return m, nil
}

func (m Model) View() string {
	var rows []string
	for _, s := range m.view.Slots() {
		top := int(s.Bounds.Y)
		for len(rows) < top {
			rows = append(rows, "")
		}
		style := m.styles.For(s.Classes).Width(int(s.Bounds.W))
		lines := cardLines(s)
		for i := 0; i < int(s.Bounds.H); i++ {
			line := ""
			if i < len(lines) {
				line = lines[i]
			}
			rows = append(rows, strings.Repeat(" ", int(s.Bounds.X))+style.Render(line))
		}
	}
	rows = append(rows, "", m.styles.Help.Render(help))
	return strings.Join(rows, "\n")
}

func cardLines(s ui.Slot) []string {
	var control string
	switch s.Control {
	case hand.ControlCheckbox:
		control = "[ ]"
		if s.Card.Visible {
			control = "[x]"
		}
	case hand.ControlMarker:
		control = " • "
	}
	pad := strings.Repeat(" ", max(int(s.Toggle.W)-len([]rune(control)), 0))
	return []string{
		fmt.Sprintf("%s%s%s  %s", control, pad, s.Card.ID, s.Card.Status),
		strings.Repeat(" ", int(s.Toggle.W)) + hand.ImagePath(s.Card),
	}
}
