package lesson

import "github.com/jilatanaka/jilata/internal/progression"

// judgedMsg is sent after the current answer has been judged.
type judgedMsg struct {
	Correct bool
	Err     error
}

// outcomeResolvedMsg carries the persisted attempt result.
type outcomeResolvedMsg struct {
	Outcome progression.AttemptOutcome
	Delta   progression.ProfileDelta
	Profile progression.Profile
	Err     error
}
