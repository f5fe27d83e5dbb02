package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/screen"
	"github.com/jilatanaka/jilata/internal/ui/components"
	"github.com/jilatanaka/jilata/internal/ui/theme"
)

// snapshotMsg carries the loaded profile view state.
type snapshotMsg struct {
	Snap *progression.Snapshot
	Err  error
}

// ProfileScreen shows the learner's standing: level, experience, lives,
// frog stage, and trail progress.
type ProfileScreen struct {
	service   *progression.Service
	learnerID string

	snap   *progression.Snapshot
	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(service *progression.Service, learnerID string) *ProfileScreen {
	return &ProfileScreen{service: service, learnerID: learnerID}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := p.service.Load(context.Background(), p.learnerID)
		return snapshotMsg{Snap: snap, Err: err}
	}
}

func (p *ProfileScreen) Title() string {
	return "Perfil"
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.snap = msg.Snap
	case screen.ProfileChangedMsg:
		return p, p.Init()
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + p.errMsg)
	}
	if p.snap == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Cargando perfil...")
	}

	prof := p.snap.Profile

	var b strings.Builder
	b.WriteString(theme.Title.Render(prof.Username))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Nivel %d", prof.Level)))
	b.WriteString("\n")

	bar := components.NewProgressBar(
		"",
		float64(progression.XPIntoLevel(prof.XP))/float64(progression.XPPerLevel),
		false,
		36,
	)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d / %d XP hacia el nivel %d",
		progression.XPIntoLevel(prof.XP), progression.XPPerLevel, prof.Level+1)))
	b.WriteString("\n\n")

	lives := prof.Lives
	if lives < 0 {
		lives = 0
	}
	if lives > progression.MaxLives {
		lives = progression.MaxLives
	}
	hearts := strings.Repeat("♥ ", lives) + strings.Repeat("♡ ", progression.MaxLives-lives)
	b.WriteString(theme.Body.Render("Vidas   "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(strings.TrimSpace(hearts)))
	b.WriteString("\n")

	b.WriteString(theme.Body.Render("Rana    "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(progression.StageName(prof.FrogStage)))
	b.WriteString("\n")

	done := 0
	for _, c := range p.snap.Completions {
		if c.Completed {
			done++
		}
	}
	b.WriteString(theme.Body.Render("Sendero "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
		fmt.Sprintf("%d de %d lecciones", done, len(p.snap.Lessons))))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("Miembro desde " + prof.CreatedAt.Format("02/01/2006")))

	card := theme.Card.Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
