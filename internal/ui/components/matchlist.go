package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/ui/theme"
)

// MatchList pairs items from a left column with items on the right.
// The learner picks a left item, then the right item to bind it to.
type MatchList struct {
	Left  []string
	Right []string

	Selected int
	onRight  bool
	picked   int

	bindings map[string]string
	revealed bool
	correct  bool
}

// NewMatchList creates a matching component over the two columns.
func NewMatchList(left, right []string) MatchList {
	return MatchList{
		Left:     left,
		Right:    right,
		picked:   -1,
		bindings: make(map[string]string),
	}
}

// Init returns nil.
func (m MatchList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and pairing. Frozen once revealed.
func (m MatchList) Update(msg tea.Msg) (MatchList, tea.Cmd) {
	if m.revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	limit := len(m.Left)
	if m.onRight {
		limit = len(m.Right)
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < limit-1 {
			m.Selected++
		}
	case "space", " ":
		if m.onRight {
			m.bindings[m.Left[m.picked]] = m.Right[m.Selected]
			m.picked = -1
			m.onRight = false
			m.Selected = 0
		} else {
			m.picked = m.Selected
			m.onRight = true
			m.Selected = 0
		}
	case "backspace", "u":
		if m.onRight {
			m.picked = -1
			m.onRight = false
			m.Selected = 0
		} else if m.Selected < len(m.Left) {
			delete(m.bindings, m.Left[m.Selected])
		}
	}

	return m, nil
}

// Complete reports whether every left item has a binding.
func (m MatchList) Complete() bool {
	return len(m.bindings) == len(m.Left)
}

// Matches returns a copy of the current bindings.
func (m MatchList) Matches() map[string]string {
	out := make(map[string]string, len(m.bindings))
	for k, v := range m.bindings {
		out[k] = v
	}
	return out
}

// Reveal freezes the component and records the judged result.
func (m *MatchList) Reveal(correct bool) {
	m.revealed = true
	m.correct = correct
}

// View renders the two columns with current bindings.
func (m MatchList) View() string {
	var s string

	for i, left := range m.Left {
		cursor := "  "
		if !m.revealed && !m.onRight && i == m.Selected {
			cursor = "▸ "
		}
		if !m.revealed && i == m.picked {
			cursor = "● "
		}

		line := cursor + left
		if bound, ok := m.bindings[left]; ok {
			line += "  ⇢ " + bound
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.revealed && m.correct:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case m.revealed:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case !m.onRight && i == m.Selected, i == m.picked:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}

	if m.onRight {
		s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("  empareja con:") + "\n"
		for i, right := range m.Right {
			cursor := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == m.Selected {
				cursor = "▸ "
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			s += style.Render(cursor+right) + "\n"
		}
	}

	return s
}
