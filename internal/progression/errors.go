package progression

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLivesRemaining rejects a lesson attempt when lives are exhausted.
	ErrNoLivesRemaining = errors.New("no lives remaining")

	// ErrAlreadyCompleted rejects a re-attempt of a completed lesson.
	ErrAlreadyCompleted = errors.New("lesson already completed")
)

// LockedLessonError indicates a lesson whose prerequisite is not completed.
// It is returned by gate checks and should be shown to the user.
type LockedLessonError struct {
	Lesson       string
	Prerequisite string
}

func (e LockedLessonError) Error() string {
	if e.Prerequisite == "" {
		return fmt.Sprintf("lesson %q is locked", e.Lesson)
	}
	return fmt.Sprintf("lesson %q is locked: complete %q first", e.Lesson, e.Prerequisite)
}
