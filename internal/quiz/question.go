// Package quiz implements the lesson assessment state machine: a fixed
// ordered sequence of heterogeneous questions, judged one at a time.
package quiz

import "fmt"

// Kind identifies a question variant. The set is closed: every Kind has
// exactly one judging rule in Judge, dispatched by tag.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindCompletion     Kind = "completion"
	KindTrueFalse      Kind = "true-false"
	KindMatching       Kind = "matching"
)

// Pair is one left/right association in a matching question.
type Pair struct {
	Left  string
	Right string
}

// Question is a tagged union over the four variants. Which fields are
// meaningful depends on Kind:
//
//   - multiple-choice: Prompt, Options, Answer (one of Options)
//   - completion: Prompt (contains the blank), Options (word bank), Answer
//   - true-false: Prompt, Answer ("true" or "false")
//   - matching: Prompt, Pairs
type Question struct {
	ID      string
	Kind    Kind
	Prompt  string
	Options []string
	Answer  string
	Pairs   []Pair
}

// Validate checks the question carries the fields its kind requires.
func (q Question) Validate() error {
	switch q.Kind {
	case KindMultipleChoice, KindCompletion:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %s: %s without options", q.ID, q.Kind)
		}
		if q.Answer == "" {
			return fmt.Errorf("question %s: missing answer", q.ID)
		}
	case KindTrueFalse:
		if q.Answer != "true" && q.Answer != "false" {
			return fmt.Errorf("question %s: true-false answer must be \"true\" or \"false\", got %q", q.ID, q.Answer)
		}
	case KindMatching:
		if len(q.Pairs) == 0 {
			return fmt.Errorf("question %s: matching without pairs", q.ID)
		}
	default:
		return fmt.Errorf("question %s: unknown kind %q", q.ID, q.Kind)
	}
	return nil
}
