package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/quiz"
	"github.com/jilatanaka/jilata/internal/ui/components"
	"github.com/jilatanaka/jilata/internal/ui/theme"
)

func (l *LessonScreen) View(width, height int) string {
	switch l.state {
	case stateError:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + l.errMsg)
	case stateResult:
		return l.renderResult(width, height)
	default:
		return l.renderQuestion(width, height)
	}
}

func (l *LessonScreen) renderQuestion(width, height int) string {
	q := l.session.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Progress line.
	info := fmt.Sprintf("  Pregunta %d de %d", l.session.Index()+1, l.session.Total())
	scoreStr := fmt.Sprintf("aciertos %d", l.session.Score())
	pad := width - lipgloss.Width(info) - len(scoreStr) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(info))
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(scoreStr))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Input area per kind.
	switch q.Kind {
	case quiz.KindMultipleChoice, quiz.KindTrueFalse:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(l.choices.View()))

	case quiz.KindCompletion:
		if len(q.Options) > 0 {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("palabras: " + strings.Join(q.Options, " · ")))
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(l.input.View()))

	case quiz.KindMatching:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(l.matches.View()))
	}

	// Verdict line during feedback.
	if l.state == stateFeedback {
		b.WriteString("\n\n")
		if l.lastCorrect {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("¡Correcto! Kusisiña!"))
		} else {
			verdict := "Incorrecto."
			if q.Kind == quiz.KindCompletion {
				verdict = fmt.Sprintf("Incorrecto. La respuesta era %q.", q.Answer)
			}
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render(verdict))
		}
	}

	return b.String()
}

func (l *LessonScreen) renderResult(width, height int) string {
	var b strings.Builder

	percent := l.session.Percent()
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Respondiste bien %d de %d (%d%%)",
		l.session.Score(), l.session.Total(), percent)))
	b.WriteString("\n\n")

	if l.outcome.Success {
		b.WriteString(theme.Title.Render("¡Lección completada!"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(stars(l.outcome.Stars)))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("+%d XP", l.lesson.XPReward)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Nivel %d · %d XP en total", l.delta.Level, l.delta.XP)))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Lección fallida"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Perdiste una vida."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Vidas restantes: %d", l.delta.Lives)))
	}

	card := theme.Card.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
	button := components.NewButton("Volver al sendero", true, nil).View()

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card+"\n\n"+button)
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
