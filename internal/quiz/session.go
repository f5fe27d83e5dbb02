package quiz

import (
	"errors"
	"fmt"
	"math"
)

// Phase is the session's position in its lifecycle for the current question.
type Phase int

const (
	PhaseInProgress       Phase = iota // waiting for a submission
	PhaseAwaitingJudgment              // submission held, not yet judged
	PhaseJudged                        // judgment shown, waiting for advance
	PhaseCompleted                     // all questions judged
)

// Answered is one judged entry in the session history.
type Answered struct {
	Question   Question
	Submission Submission
	Correct    bool
}

// Session drives one lesson's assessment. The question order is fixed for
// the session's duration; a judged question can never be re-submitted, and
// advancing is only possible after judgment. Discard the session to abandon
// it; nothing is persisted here.
type Session struct {
	questions []Question
	index     int
	phase     Phase
	pending   Submission
	history   []Answered
	score     int
}

// NewSession starts a session over a fixed question sequence.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, errors.New("session needs at least one question")
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	seq := make([]Question, len(questions))
	copy(seq, questions)
	return &Session{questions: seq}, nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the zero-based index of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the sequence.
func (s *Session) Total() int { return len(s.questions) }

// Current returns the question awaiting submission or judgment.
// Returns nil once the session is completed.
func (s *Session) Current() *Question {
	if s.phase == PhaseCompleted {
		return nil
	}
	q := s.questions[s.index]
	return &q
}

// History returns the judged entries so far, in question order.
func (s *Session) History() []Answered { return s.history }

// Score returns the running count of correct answers.
func (s *Session) Score() int { return s.score }

// Submit stores a submission for the current question. The submission's
// shape is checked against the question's kind before any state changes; an
// invalid submission leaves the session in PhaseInProgress.
func (s *Session) Submit(sub Submission) error {
	if s.phase != PhaseInProgress {
		return fmt.Errorf("cannot submit in phase %d", s.phase)
	}
	q := s.questions[s.index]

	// Dry-run the judge to reject malformed submissions up front. The
	// verdict itself is not recorded until Judge is called.
	if _, err := Judge(q, sub); err != nil {
		return err
	}

	s.pending = sub
	s.phase = PhaseAwaitingJudgment
	return nil
}

// Judge evaluates the held submission and returns the verdict. The question
// is appended to the history and the running score updated.
func (s *Session) Judge() (bool, error) {
	if s.phase != PhaseAwaitingJudgment {
		return false, errors.New("no submission awaiting judgment")
	}
	q := s.questions[s.index]

	correct, err := Judge(q, s.pending)
	if err != nil {
		return false, err
	}

	s.history = append(s.history, Answered{
		Question:   q,
		Submission: s.pending,
		Correct:    correct,
	})
	if correct {
		s.score++
	}
	s.pending = Submission{}
	s.phase = PhaseJudged
	return correct, nil
}

// Advance moves past a judged question: to the next question, or to
// PhaseCompleted when the judged question was the last in the sequence.
func (s *Session) Advance() error {
	if s.phase != PhaseJudged {
		return errors.New("cannot advance before judgment")
	}
	if s.index+1 >= len(s.questions) {
		s.phase = PhaseCompleted
		return nil
	}
	s.index++
	s.phase = PhaseInProgress
	return nil
}

// FinalScore returns the count of correctly answered questions. Only
// meaningful once the session is completed.
func (s *Session) FinalScore() int { return s.score }

// Percent returns the completion percentage for display, rounded half away
// from zero: 2 of 3 renders as 67, not 66.
func (s *Session) Percent() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(s.score) / float64(len(s.questions)) * 100))
}
