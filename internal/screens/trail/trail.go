package trail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/culture"
	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/quiz"
	"github.com/jilatanaka/jilata/internal/router"
	"github.com/jilatanaka/jilata/internal/screen"
	lessonscreen "github.com/jilatanaka/jilata/internal/screens/lesson"
	"github.com/jilatanaka/jilata/internal/store"
	"github.com/jilatanaka/jilata/internal/ui/layout"
	"github.com/jilatanaka/jilata/internal/ui/theme"
)

// snapshotMsg carries the loaded trail state.
type snapshotMsg struct {
	Snap *progression.Snapshot
	Err  error
}

// attemptCheckedMsg reports the gate decision for one lesson.
type attemptCheckedMsg struct {
	Lesson    progression.Lesson
	Questions []quiz.Question
	Err       error
}

// TrailScreen lists the lesson trail in order, with lock and star state
// per lesson. Lessons unlock strictly in sequence.
type TrailScreen struct {
	service   *progression.Service
	store     *store.Store
	learnerID string

	snap     *progression.Snapshot
	selected int
	notice   string
	errMsg   string

	showingCard bool
	card        culture.Card
}

var _ screen.Screen = (*TrailScreen)(nil)
var _ screen.KeyHintProvider = (*TrailScreen)(nil)

// New creates the trail screen.
func New(service *progression.Service, st *store.Store, learnerID string) *TrailScreen {
	return &TrailScreen{
		service:   service,
		store:     st,
		learnerID: learnerID,
	}
}

func (t *TrailScreen) Init() tea.Cmd {
	return t.load()
}

func (t *TrailScreen) Title() string {
	return "Sendero"
}

func (t *TrailScreen) KeyHints() []layout.KeyHint {
	if t.showingCard {
		return []layout.KeyHint{
			{Key: "any key", Description: "Cerrar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Empezar"},
		{Key: "C", Description: "Cultura Viva"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (t *TrailScreen) load() tea.Cmd {
	return func() tea.Msg {
		snap, err := t.service.Load(context.Background(), t.learnerID)
		return snapshotMsg{Snap: snap, Err: err}
	}
}

// checkAttempt asks the gate whether the selected lesson may start and, if
// so, fetches its questions.
func (t *TrailScreen) checkAttempt(lesson progression.Lesson) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		checked, err := t.service.CheckAttempt(ctx, t.learnerID, lesson.ID)
		if err != nil {
			return attemptCheckedMsg{Lesson: lesson, Err: err}
		}
		questions, err := t.store.FetchQuestions(ctx, checked.ID)
		if err != nil {
			return attemptCheckedMsg{Lesson: lesson, Err: err}
		}
		return attemptCheckedMsg{Lesson: checked, Questions: questions}
	}
}

func (t *TrailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		if msg.Err != nil {
			t.errMsg = msg.Err.Error()
			return t, nil
		}
		t.snap = msg.Snap
		if t.selected >= len(t.snap.Lessons) {
			t.selected = 0
		}
		return t, nil

	case screen.ProfileChangedMsg:
		// A lesson just finished underneath us. Reload stars and locks.
		return t, t.load()

	case attemptCheckedMsg:
		if msg.Err != nil {
			t.notice = rejectionNotice(msg.Err)
			return t, nil
		}
		return t, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: lessonscreen.New(t.service, t.learnerID, msg.Lesson, msg.Questions),
			}
		}

	case tea.KeyMsg:
		if t.showingCard {
			t.showingCard = false
			return t, nil
		}
		if t.snap == nil {
			return t, nil
		}
		t.notice = ""
		switch msg.String() {
		case "up", "k":
			if t.selected > 0 {
				t.selected--
			}
		case "down", "j":
			if t.selected < len(t.snap.Lessons)-1 {
				t.selected++
			}
		case "enter":
			return t, t.checkAttempt(t.snap.Lessons[t.selected])
		case "c":
			lesson := t.snap.Lessons[t.selected]
			if card, ok := culture.ForPlace(lesson.Place); ok {
				t.card = card
				t.showingCard = true
			}
		}
	}

	return t, nil
}

// rejectionNotice translates gate errors into learner-facing text.
func rejectionNotice(err error) string {
	var locked progression.LockedLessonError
	switch {
	case errors.Is(err, progression.ErrNoLivesRemaining):
		return "Sin vidas. Completa una lección antes de perder más."
	case errors.Is(err, progression.ErrAlreadyCompleted):
		return "Ya completaste esta lección."
	case errors.As(err, &locked):
		return fmt.Sprintf("Bloqueada. Completa %q primero.", locked.Prerequisite)
	default:
		return err.Error()
	}
}

func (t *TrailScreen) View(width, height int) string {
	if t.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + t.errMsg)
	}
	if t.snap == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Cargando el sendero...")
	}
	if t.showingCard {
		return t.renderCard(width, height)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("  Sendero del lago"))
	b.WriteString("\n\n")

	completions := make(map[string]progression.CompletionRecord, len(t.snap.Completions))
	for _, c := range t.snap.Completions {
		completions[c.LessonID] = c
	}

	for i, lesson := range t.snap.Lessons {
		b.WriteString(t.renderLesson(lesson, completions, i == t.selected))
		b.WriteString("\n")
	}

	if t.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  " + t.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (t *TrailScreen) renderLesson(lesson progression.Lesson, completions map[string]progression.CompletionRecord, selected bool) string {
	record, done := completions[lesson.ID]
	done = done && record.Completed
	unlocked := progression.IsUnlocked(lesson, t.snap.Lessons, t.snap.Completions)

	var status string
	switch {
	case done:
		status = lipgloss.NewStyle().Foreground(theme.Accent).Render(stars(record.Stars))
	case unlocked:
		status = lipgloss.NewStyle().Foreground(theme.Primary).Render("disponible")
	default:
		status = lipgloss.NewStyle().Foreground(theme.Locked).Render("bloqueada")
	}

	cursor := "   "
	if selected {
		cursor = " ▸ "
	}

	line := fmt.Sprintf("%s%s  %-22s %-14s %s", cursor, lesson.Icon, lesson.Title, lesson.Place, status)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case selected:
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	case !unlocked && !done:
		style = lipgloss.NewStyle().Foreground(theme.Locked)
	}

	return style.Render(line)
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 3 {
		n = 3
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

func (t *TrailScreen) renderCard(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Cultura Viva · " + t.card.Place))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(t.card.Festivity))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(t.card.Season))
	b.WriteString("\n\n")

	for _, w := range t.card.Words {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(w.Aymara))
		b.WriteString(theme.Hint.Render("  " + w.Meaning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Width(width - 16).Render(t.card.Text))

	card := theme.Card.Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
