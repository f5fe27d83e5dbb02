package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/ui/theme"
)

// ChoiceList is a vertical option selector for choice-style questions.
// It only tracks the highlighted option; the caller decides when a
// selection is final and what the right answer was.
type ChoiceList struct {
	Options  []string
	Selected int

	revealed     bool
	chosenIndex  int
	correctIndex int
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options:      options,
		Selected:     0,
		chosenIndex:  -1,
		correctIndex: -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Once revealed the list is frozen.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Chosen returns the currently highlighted option text.
func (c ChoiceList) Chosen() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// Reveal freezes the list and colors the chosen and correct options.
func (c *ChoiceList) Reveal(correctAnswer string) {
	c.revealed = true
	c.chosenIndex = c.Selected
	c.correctIndex = -1
	for i, opt := range c.Options {
		if opt == correctAnswer {
			c.correctIndex = i
			break
		}
	}
}

// View renders the option list.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range c.Options {
		label := "·"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == c.Selected && !c.revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if c.revealed {
			switch {
			case i == c.correctIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == c.chosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}
