package quiz

import "fmt"

// Submission is a learner's answer to one question. Choice carries the
// selected string for the single-answer kinds; Matches carries the
// left-to-right mapping for matching questions. Exactly one of the two must
// be populated, matching the question's kind.
type Submission struct {
	Choice  string
	Matches map[string]string
}

// ChoiceSubmission builds a submission for the single-answer kinds.
func ChoiceSubmission(choice string) Submission {
	return Submission{Choice: choice}
}

// MatchSubmission builds a submission for a matching question.
func MatchSubmission(matches map[string]string) Submission {
	return Submission{Matches: matches}
}

// InvalidSubmissionError rejects a submission whose shape does not fit the
// question's kind. The session state is left untouched.
type InvalidSubmissionError struct {
	Kind   Kind
	Reason string
}

func (e InvalidSubmissionError) Error() string {
	return fmt.Sprintf("invalid submission for %s question: %s", e.Kind, e.Reason)
}

// Judge validates a submission against a question's answer key. It is a
// pure, synchronous function: no external calls, no state. Dispatch is by
// kind tag so the variant set stays exhaustive.
func Judge(q Question, sub Submission) (bool, error) {
	switch q.Kind {
	case KindMultipleChoice, KindCompletion, KindTrueFalse:
		return judgeChoice(q, sub)
	case KindMatching:
		return judgeMatching(q, sub)
	default:
		return false, InvalidSubmissionError{Kind: q.Kind, Reason: "unknown question kind"}
	}
}

// judgeChoice checks a single-answer submission by exact, case-sensitive
// comparison against the authored answer string.
func judgeChoice(q Question, sub Submission) (bool, error) {
	if sub.Matches != nil {
		return false, InvalidSubmissionError{Kind: q.Kind, Reason: "expected a single choice, got a matching map"}
	}
	if sub.Choice == "" {
		return false, InvalidSubmissionError{Kind: q.Kind, Reason: "empty choice"}
	}
	return sub.Choice == q.Answer, nil
}

// judgeMatching checks a matching submission. Correct iff the mapping is
// total over the question's pairs and every left item maps to its defined
// right item. All-or-nothing: partial matches earn no credit.
func judgeMatching(q Question, sub Submission) (bool, error) {
	if sub.Choice != "" {
		return false, InvalidSubmissionError{Kind: q.Kind, Reason: "expected a matching map, got a single choice"}
	}
	if sub.Matches == nil {
		return false, InvalidSubmissionError{Kind: q.Kind, Reason: "missing matching map"}
	}

	if len(sub.Matches) != len(q.Pairs) {
		return false, nil
	}
	for _, pair := range q.Pairs {
		chosen, ok := sub.Matches[pair.Left]
		if !ok || chosen != pair.Right {
			return false, nil
		}
	}
	return true, nil
}
