package progression

import "sort"

// IsUnlocked reports whether a lesson may be opened. The lesson with the
// lowest order index is always unlocked; any other lesson requires the
// immediately preceding lesson (by order index) to have a completion record
// with Completed set. A lesson whose predecessor is missing from the
// curriculum is locked. The chain is strictly linear: no branching, no
// multiple prerequisites.
func IsUnlocked(lesson Lesson, lessons []Lesson, completions []CompletionRecord) bool {
	prev, ok := predecessor(lesson, lessons)
	if !ok {
		// No earlier lesson exists; this is the root of the chain.
		return isFirst(lesson, lessons)
	}
	return isCompleted(prev.ID, completions)
}

// CanAttempt layers the attempt-level gates on top of IsUnlocked: the lesson
// must be unlocked, not yet completed, and the learner must have at least
// one life. A rejected attempt leaves all state untouched.
func CanAttempt(profile Profile, lesson Lesson, lessons []Lesson, completions []CompletionRecord) error {
	if profile.Lives <= 0 {
		return ErrNoLivesRemaining
	}
	if isCompleted(lesson.ID, completions) {
		return ErrAlreadyCompleted
	}
	if !IsUnlocked(lesson, lessons, completions) {
		var prereq string
		if prev, ok := predecessor(lesson, lessons); ok {
			prereq = prev.Title
		}
		return LockedLessonError{Lesson: lesson.Title, Prerequisite: prereq}
	}
	return nil
}

// SortByOrder returns the lessons sorted by ascending order index.
func SortByOrder(lessons []Lesson) []Lesson {
	sorted := make([]Lesson, len(lessons))
	copy(sorted, lessons)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}

// predecessor finds the lesson immediately before l in order-index order.
func predecessor(l Lesson, lessons []Lesson) (Lesson, bool) {
	var prev Lesson
	found := false
	for _, cand := range lessons {
		if cand.OrderIndex >= l.OrderIndex {
			continue
		}
		if !found || cand.OrderIndex > prev.OrderIndex {
			prev = cand
			found = true
		}
	}
	return prev, found
}

// isFirst reports whether l holds the minimum order index in the curriculum.
func isFirst(l Lesson, lessons []Lesson) bool {
	for _, cand := range lessons {
		if cand.OrderIndex < l.OrderIndex {
			return false
		}
	}
	return true
}

func isCompleted(lessonID string, completions []CompletionRecord) bool {
	for _, c := range completions {
		if c.LessonID == lessonID {
			return c.Completed
		}
	}
	return false
}
