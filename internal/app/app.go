package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/router"
	"github.com/jilatanaka/jilata/internal/screen"
	"github.com/jilatanaka/jilata/internal/screens/home"
	"github.com/jilatanaka/jilata/internal/store"
	"github.com/jilatanaka/jilata/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Service   *progression.Service
	Store     *store.Store
	LearnerID string

	// Header state, pre-loaded so the first frame is not empty.
	Profile progression.Profile
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile progression.Profile
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Service, opts.Store, opts.LearnerID)
	return AppModel{
		router:  router.New(homeScreen),
		profile: opts.Profile,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ProfileChangedMsg:
		// Keep the header current, then let the active screen react too.
		m.profile = msg.Profile

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)

	// A pop exposes a screen that may be showing stale state; let it
	// reload the same way it did when first pushed.
	if _, popped := msg.(router.PopScreenMsg); popped {
		if active := m.router.Active(); active != nil {
			return m, tea.Batch(cmd, active.Init())
		}
	}

	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.profile.Lives, m.profile.Level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Volver"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navegar"},
				{Key: "Enter", Description: "Elegir"},
				{Key: "Ctrl+C", Description: "Salir"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
