package frog

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/screen"
	"github.com/jilatanaka/jilata/internal/ui/layout"
	"github.com/jilatanaka/jilata/internal/ui/theme"
)

// visitDoneMsg carries the persisted profile after the habitat visit.
type visitDoneMsg struct {
	Profile progression.Profile
	Grown   bool
	Reset   bool
	Err     error
}

// FrogScreen is the frog habitat. Entering it counts as the daily visit:
// the growth engine runs once on Init and the screen renders whatever
// stage was persisted.
type FrogScreen struct {
	service   *progression.Service
	learnerID string

	profile  progression.Profile
	visited  bool
	grown    bool
	wasReset bool
	errMsg   string

	// browsing lets the learner page through all growth stages; stages
	// beyond the current one render locked.
	browsing int
}

var _ screen.Screen = (*FrogScreen)(nil)
var _ screen.KeyHintProvider = (*FrogScreen)(nil)

// New creates the habitat screen for the given learner.
func New(service *progression.Service, learnerID string) *FrogScreen {
	return &FrogScreen{
		service:   service,
		learnerID: learnerID,
		browsing:  -1,
	}
}

func (f *FrogScreen) Init() tea.Cmd {
	return f.visit()
}

func (f *FrogScreen) Title() string {
	return "La Rana"
}

func (f *FrogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Etapas"},
		{Key: "Esc", Description: "Volver"},
	}
}

// visit runs the growth engine and reports what changed.
func (f *FrogScreen) visit() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		before, err := f.service.Load(ctx, f.learnerID)
		if err != nil {
			return visitDoneMsg{Err: err}
		}
		after, err := f.service.VisitFrog(ctx, f.learnerID, now)
		if err != nil {
			return visitDoneMsg{Err: err}
		}

		return visitDoneMsg{
			Profile: after,
			Grown:   after.FrogStage > before.Profile.FrogStage,
			Reset:   after.FrogStage < before.Profile.FrogStage,
		}
	}
}

func (f *FrogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case visitDoneMsg:
		if msg.Err != nil {
			f.errMsg = msg.Err.Error()
			return f, nil
		}
		f.profile = msg.Profile
		f.visited = true
		f.grown = msg.Grown
		f.wasReset = msg.Reset
		f.browsing = msg.Profile.FrogStage
		return f, func() tea.Msg {
			return screen.ProfileChangedMsg{Profile: msg.Profile}
		}

	case tea.KeyMsg:
		if !f.visited {
			return f, nil
		}
		switch msg.String() {
		case "left", "h":
			if f.browsing > progression.StageEgg {
				f.browsing--
			}
		case "right", "l":
			if f.browsing < progression.StageFinal {
				f.browsing++
			}
		}
	}

	return f, nil
}

func (f *FrogScreen) View(width, height int) string {
	if f.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + f.errMsg)
	}
	if !f.visited {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Visitando el hábitat...")
	}

	var b strings.Builder

	locked := f.browsing > f.profile.FrogStage

	art := Art(f.browsing)
	if locked {
		art = theme.LockedStyle.Render(silhouette(f.browsing))
	}

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(art))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(f.stageDots()))
	b.WriteString("\n\n")

	name := progression.StageName(f.browsing)
	if locked {
		name = "???"
	}
	stageLine := fmt.Sprintf("Etapa %d de %d  ·  %s", f.browsing+1, progression.StageFinal+1, name)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(stageLine))
	b.WriteString("\n\n")

	if f.browsing == f.profile.FrogStage {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(f.statusLine()))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

// stageDots renders one dot per stage: filled for reached stages, hollow
// beyond, with the browsed stage highlighted.
func (f *FrogScreen) stageDots() string {
	var b strings.Builder
	for stage := progression.StageEgg; stage <= progression.StageFinal; stage++ {
		dot := "○"
		color := theme.Locked
		if stage <= f.profile.FrogStage {
			dot = "●"
			color = theme.Primary
		}
		if stage == f.browsing {
			color = theme.Accent
		}
		if stage > progression.StageEgg {
			b.WriteString(" ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(dot))
	}
	return b.String()
}

// statusLine summarizes today's visit.
func (f *FrogScreen) statusLine() string {
	switch {
	case f.wasReset:
		return "La rana volvió a ser huevo. ¡Visítala cada día para que crezca!"
	case f.grown && f.profile.FrogStage == progression.StageFinal:
		return "¡Tu rana llegó a adulta! Sigue visitándola cada día."
	case f.grown:
		return "¡Tu rana creció hoy! Vuelve mañana para la siguiente etapa."
	case f.profile.FrogStage == progression.StageFinal:
		return "Tu rana ya es adulta. Las visitas diarias la mantienen feliz."
	default:
		return "Ya visitaste a tu rana hoy. Vuelve mañana para que crezca."
	}
}

// silhouette renders a stage's art with every glyph blanked to a dot, so
// locked stages show shape without detail.
func silhouette(stage int) string {
	art := stageArt[stage]
	var b strings.Builder
	for _, r := range art {
		switch r {
		case '\n', ' ':
			b.WriteRune(r)
		default:
			b.WriteRune('·')
		}
	}
	return b.String()
}
