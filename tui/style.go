package tui

import "github.com/charmbracelet/lipgloss"

// Styles maps card classes to terminal styles.
type Styles struct {
	Card    lipgloss.Style
	Classes map[string]func(lipgloss.Style) lipgloss.Style
	Help    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#201a14")).
			Background(lipgloss.Color("#e8dcc4")),
		Classes: map[string]func(lipgloss.Style) lipgloss.Style{
			"card--hidden": func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
			"card--dragged": func(s lipgloss.Style) lipgloss.Style {
				return s.Bold(true).Background(lipgloss.Color("#f2c14e"))
			},
			"card--hover":   func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
			"card--active":  func(s lipgloss.Style) lipgloss.Style { return s.Background(lipgloss.Color("#a7d38f")) },
			"card--discard": func(s lipgloss.Style) lipgloss.Style { return s.Background(lipgloss.Color("#e3b56b")) },
			"card--lost":    func(s lipgloss.Style) lipgloss.Style { return s.Background(lipgloss.Color("#c96a5f")) },
		},
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s Styles) For(classes []string) lipgloss.Style {
	style := s.Card
	for _, class := range classes {
		if fn, ok := s.Classes[class]; ok {
			style = fn(style)
		}
	}
	return style
}
