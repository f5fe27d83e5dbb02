package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "one", Disabled: true},
		{Label: "two"},
		{Label: "three", Disabled: true},
		{Label: "four"},
	})

	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(keyPress('j'))
	if m.Selected != 3 {
		t.Errorf("after down: selection = %d, want 3", m.Selected)
	}

	m, _ = m.Update(keyPress('j'))
	if m.Selected != 3 {
		t.Errorf("down at bottom moved selection to %d", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("after up: selection = %d, want 1", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "go", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("enter did not run the selected action")
	}
}

func TestMenuEnterIgnoresDisabled(t *testing.T) {
	ran := false
	m := Menu{
		Items: []MenuItem{
			{Label: "no", Disabled: true, Action: func() tea.Cmd {
				ran = true
				return nil
			}},
		},
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran {
		t.Error("enter ran the action of a disabled item")
	}
}
