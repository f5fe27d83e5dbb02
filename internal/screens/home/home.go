package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/router"
	"github.com/jilatanaka/jilata/internal/screen"
	frogscreen "github.com/jilatanaka/jilata/internal/screens/frog"
	profilescreen "github.com/jilatanaka/jilata/internal/screens/profile"
	"github.com/jilatanaka/jilata/internal/screens/trail"
	"github.com/jilatanaka/jilata/internal/store"
	"github.com/jilatanaka/jilata/internal/ui/components"
	"github.com/jilatanaka/jilata/internal/ui/theme"
)

// snapshotMsg carries the loaded home stats.
type snapshotMsg struct {
	Snap *progression.Snapshot
	Err  error
}

// HomeScreen is the main entry screen.
type HomeScreen struct {
	service   *progression.Service
	learnerID string

	menu   components.Menu
	snap   *progression.Snapshot
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen and its navigation menu.
func New(service *progression.Service, st *store.Store, learnerID string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SENDERO DE LECCIONES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trail.New(service, st, learnerID)}
			}
		}},
		{Label: "LA RANA", Hint: "visita diaria", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: frogscreen.New(service, learnerID)}
			}
		}},
		{Label: "PERFIL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(service, learnerID)}
			}
		}},
		{Label: "SALIR", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		service:   service,
		learnerID: learnerID,
		menu:      components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) Title() string {
	return "Jilata"
}

func (h *HomeScreen) load() tea.Cmd {
	return func() tea.Msg {
		snap, err := h.service.Load(context.Background(), h.learnerID)
		return snapshotMsg{Snap: snap, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.snap = msg.Snap
		return h, nil

	case screen.ProfileChangedMsg:
		// Refresh the stat line after lessons or habitat visits.
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner(width))

	if h.snap != nil {
		sections = append(sections, renderMascot(h.snap.Profile.FrogStage, width))
		sections = append(sections, renderStatLine(h.snap, width))
	}

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View()))

	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(h.errMsg))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

const banner = `     ___ _ _       _
    |_  (_) | __ _| |_ __ _
      | | | |/ _` + "`" + ` | __/ _` + "`" + ` |
     /| | | | (_| | || (_| |
     \__/_|_|\__,_|\__\__,_|`

func renderBanner(width int) string {
	art := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner)
	tagline := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Aprende aymara a orillas del lago")
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(art + "\n\n" + tagline)
}

// renderMascot shows the learner's frog at its current stage.
func renderMascot(stage int, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(frogscreen.Art(stage))
}

func renderStatLine(snap *progression.Snapshot, width int) string {
	prof := snap.Profile

	done := 0
	for _, c := range snap.Completions {
		if c.Completed {
			done++
		}
	}

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("Nivel %d", prof.Level)),
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("♥ %d", prof.Lives)),
		lipgloss.NewStyle().Foreground(theme.Primary).Render(progression.StageName(prof.FrogStage)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("%d/%d lecciones", done, len(snap.Lessons))),
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "   ·   "))
}
