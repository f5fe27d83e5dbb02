package lesson

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/quiz"
	"github.com/jilatanaka/jilata/internal/router"
	"github.com/jilatanaka/jilata/internal/screen"
	"github.com/jilatanaka/jilata/internal/ui/components"
	"github.com/jilatanaka/jilata/internal/ui/layout"
)

// viewState tracks which face of the screen is showing.
type viewState int

const (
	stateQuestion viewState = iota
	stateFeedback
	stateResult
	stateError
)

// LessonScreen runs one lesson attempt: the quiz session question by
// question, then the outcome roll and its persistence, then the result.
type LessonScreen struct {
	service   *progression.Service
	learnerID string
	lesson    progression.Lesson

	session *quiz.Session
	state   viewState

	// Per-question input. Which one is live depends on the question kind.
	choices components.ChoiceList
	input   components.TextInput
	matches components.MatchList

	// choiceValues maps displayed options back to submission values. For
	// true-false questions the display is Spanish but the answer key is
	// "true"/"false".
	choiceValues []string

	lastCorrect bool
	outcome     progression.AttemptOutcome
	delta       progression.ProfileDelta
	profile     progression.Profile
	errMsg      string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen over pre-fetched questions. The caller has
// already passed the attempt gate.
func New(service *progression.Service, learnerID string, lesson progression.Lesson, questions []quiz.Question) *LessonScreen {
	s := &LessonScreen{
		service:   service,
		learnerID: learnerID,
		lesson:    lesson,
	}

	session, err := quiz.NewSession(questions)
	if err != nil {
		s.state = stateError
		s.errMsg = err.Error()
		return s
	}
	s.session = session
	s.setupQuestion()
	return s
}

func (l *LessonScreen) Init() tea.Cmd {
	if l.state == stateQuestion && l.session.Current() != nil &&
		l.session.Current().Kind == quiz.KindCompletion {
		return l.input.Init()
	}
	return nil
}

func (l *LessonScreen) Title() string {
	return l.lesson.Title
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	switch l.state {
	case stateFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continuar"},
		}
	case stateResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Al sendero"},
		}
	default:
		if l.session == nil {
			return nil
		}
		if q := l.session.Current(); q != nil && q.Kind == quiz.KindMatching {
			return []layout.KeyHint{
				{Key: "Espacio", Description: "Emparejar"},
				{Key: "Enter", Description: "Responder"},
				{Key: "Esc", Description: "Abandonar"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Responder"},
			{Key: "Esc", Description: "Abandonar"},
		}
	}
}

// setupQuestion builds the input component for the current question.
func (l *LessonScreen) setupQuestion() {
	q := l.session.Current()
	if q == nil {
		return
	}

	switch q.Kind {
	case quiz.KindMultipleChoice:
		l.choiceValues = q.Options
		l.choices = components.NewChoiceList(q.Options)

	case quiz.KindTrueFalse:
		l.choiceValues = []string{"true", "false"}
		l.choices = components.NewChoiceList([]string{"Verdadero", "Falso"})

	case quiz.KindCompletion:
		l.input = components.NewTextInput("Escribe la palabra...", 30)

	case quiz.KindMatching:
		left := make([]string, 0, len(q.Pairs))
		right := make([]string, 0, len(q.Pairs))
		for _, p := range q.Pairs {
			left = append(left, p.Left)
			right = append(right, p.Right)
		}
		// Present the right column in reverse so pairs do not line up.
		for i, j := 0, len(right)-1; i < j; i, j = i+1, j-1 {
			right[i], right[j] = right[j], right[i]
		}
		l.matches = components.NewMatchList(left, right)
	}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case judgedMsg:
		return l.handleJudged(msg)

	case outcomeResolvedMsg:
		return l.handleOutcome(msg)

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	// Forward non-key messages to the text input (cursor blink).
	if l.state == stateQuestion && l.session != nil && l.session.Current() != nil &&
		l.session.Current().Kind == quiz.KindCompletion {
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch l.state {
	case stateError:
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case stateFeedback:
		return l.advance()

	case stateResult:
		if key == "enter" {
			profile := l.profile
			return l, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return screen.ProfileChangedMsg{Profile: profile} },
			)
		}
		return l, nil
	}

	// Active question.
	q := l.session.Current()
	if q == nil {
		return l, nil
	}

	if key == "enter" {
		return l.submit()
	}

	switch q.Kind {
	case quiz.KindMultipleChoice, quiz.KindTrueFalse:
		var cmd tea.Cmd
		l.choices, cmd = l.choices.Update(msg)
		return l, cmd
	case quiz.KindCompletion:
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	case quiz.KindMatching:
		var cmd tea.Cmd
		l.matches, cmd = l.matches.Update(msg)
		return l, cmd
	}

	return l, nil
}

// submit builds the submission for the current question and judges it.
// Incomplete input is ignored rather than judged wrong.
func (l *LessonScreen) submit() (screen.Screen, tea.Cmd) {
	q := l.session.Current()
	if q == nil {
		return l, nil
	}

	var sub quiz.Submission
	switch q.Kind {
	case quiz.KindMultipleChoice, quiz.KindTrueFalse:
		sub = quiz.ChoiceSubmission(l.choiceValues[l.choices.Selected])
	case quiz.KindCompletion:
		value := strings.TrimSpace(l.input.Value())
		if value == "" {
			return l, nil
		}
		sub = quiz.ChoiceSubmission(value)
	case quiz.KindMatching:
		if !l.matches.Complete() {
			return l, nil
		}
		sub = quiz.MatchSubmission(l.matches.Matches())
	}

	if err := l.session.Submit(sub); err != nil {
		return l, func() tea.Msg { return judgedMsg{Err: err} }
	}
	correct, err := l.session.Judge()
	return l, func() tea.Msg { return judgedMsg{Correct: correct, Err: err} }
}

func (l *LessonScreen) handleJudged(msg judgedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		l.state = stateError
		l.errMsg = msg.Err.Error()
		return l, nil
	}

	l.lastCorrect = msg.Correct
	l.state = stateFeedback

	// Freeze the input component with the verdict.
	q := l.session.Current()
	if q != nil {
		switch q.Kind {
		case quiz.KindMultipleChoice:
			l.choices.Reveal(q.Answer)
		case quiz.KindTrueFalse:
			display := "Verdadero"
			if q.Answer == "false" {
				display = "Falso"
			}
			l.choices.Reveal(display)
		case quiz.KindCompletion:
			l.input.Submit(msg.Correct)
		case quiz.KindMatching:
			l.matches.Reveal(msg.Correct)
		}
	}

	return l, nil
}

// advance moves to the next question, or to outcome resolution after the
// last one.
func (l *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	if err := l.session.Advance(); err != nil {
		l.state = stateError
		l.errMsg = err.Error()
		return l, nil
	}

	if l.session.Phase() == quiz.PhaseCompleted {
		return l, l.resolve()
	}

	l.state = stateQuestion
	l.setupQuestion()
	return l, l.Init()
}

// resolve rolls the attempt outcome and persists the resulting delta.
func (l *LessonScreen) resolve() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		outcome := progression.NewRoller(nil).Roll()

		delta, err := l.service.ResolveAttempt(ctx, l.learnerID, l.lesson, outcome, time.Now())
		if err != nil {
			return outcomeResolvedMsg{Err: err}
		}

		snap, err := l.service.Load(ctx, l.learnerID)
		if err != nil {
			return outcomeResolvedMsg{Err: err}
		}

		return outcomeResolvedMsg{
			Outcome: outcome,
			Delta:   delta,
			Profile: snap.Profile,
		}
	}
}

func (l *LessonScreen) handleOutcome(msg outcomeResolvedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		l.state = stateError
		l.errMsg = msg.Err.Error()
		return l, nil
	}
	l.outcome = msg.Outcome
	l.delta = msg.Delta
	l.profile = msg.Profile
	l.state = stateResult
	return l, nil
}
