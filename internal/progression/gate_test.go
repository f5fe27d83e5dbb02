package progression

import (
	"errors"
	"testing"
)

func curriculum() []Lesson {
	return []Lesson{
		{ID: "l1", OrderIndex: 1, Title: "Saludos"},
		{ID: "l2", OrderIndex: 2, Title: "Familia"},
		{ID: "l3", OrderIndex: 3, Title: "Cultura Viva"},
		{ID: "l4", OrderIndex: 4, Title: "Despedidas"},
	}
}

func completed(ids ...string) []CompletionRecord {
	var recs []CompletionRecord
	for _, id := range ids {
		recs = append(recs, CompletionRecord{LessonID: id, Completed: true, Stars: 2})
	}
	return recs
}

func TestFirstLessonAlwaysUnlocked(t *testing.T) {
	lessons := curriculum()

	if !IsUnlocked(lessons[0], lessons, nil) {
		t.Error("first lesson locked with no completions")
	}
	if !IsUnlocked(lessons[0], lessons, completed("l2", "l3")) {
		t.Error("first lesson locked despite later completions")
	}
}

func TestUnlockFollowsPredecessor(t *testing.T) {
	lessons := curriculum()

	tests := []struct {
		lesson      Lesson
		completions []CompletionRecord
		want        bool
	}{
		{lessons[1], nil, false},
		{lessons[1], completed("l1"), true},
		{lessons[2], completed("l1"), false},
		{lessons[2], completed("l1", "l2"), true},
		{lessons[3], completed("l1", "l2"), false},
		// An incomplete record on the predecessor does not unlock.
		{lessons[1], []CompletionRecord{{LessonID: "l1", Completed: false}}, false},
	}

	for _, tt := range tests {
		if got := IsUnlocked(tt.lesson, lessons, tt.completions); got != tt.want {
			t.Errorf("IsUnlocked(%s) with %d completions = %v, want %v",
				tt.lesson.ID, len(tt.completions), got, tt.want)
		}
	}
}

func TestUnlockWithSparseOrderIndexes(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", OrderIndex: 10},
		{ID: "b", OrderIndex: 25},
		{ID: "c", OrderIndex: 40},
	}

	if !IsUnlocked(lessons[0], lessons, nil) {
		t.Error("minimum order index should be unlocked")
	}
	if IsUnlocked(lessons[1], lessons, nil) {
		t.Error("lesson b unlocked without its predecessor completed")
	}
	if !IsUnlocked(lessons[1], lessons, completed("a")) {
		t.Error("lesson b locked despite predecessor completed")
	}
}

func TestCanAttemptGates(t *testing.T) {
	lessons := curriculum()
	profile := Profile{ID: "p1", Lives: 3}

	if err := CanAttempt(profile, lessons[0], lessons, nil); err != nil {
		t.Errorf("open first lesson: unexpected error %v", err)
	}

	// Lives run out before anything else is considered.
	drained := profile
	drained.Lives = 0
	if err := CanAttempt(drained, lessons[0], lessons, nil); !errors.Is(err, ErrNoLivesRemaining) {
		t.Errorf("zero lives: got %v, want ErrNoLivesRemaining", err)
	}

	// Completed lessons are immutable.
	err := CanAttempt(profile, lessons[0], lessons, completed("l1"))
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("re-attempt: got %v, want ErrAlreadyCompleted", err)
	}

	// Locked lessons report their prerequisite.
	err = CanAttempt(profile, lessons[2], lessons, completed("l1"))
	var locked LockedLessonError
	if !errors.As(err, &locked) {
		t.Fatalf("locked lesson: got %v, want LockedLessonError", err)
	}
	if locked.Prerequisite != "Familia" {
		t.Errorf("prerequisite = %q, want Familia", locked.Prerequisite)
	}
}

func TestSortByOrder(t *testing.T) {
	lessons := []Lesson{
		{ID: "c", OrderIndex: 3},
		{ID: "a", OrderIndex: 1},
		{ID: "b", OrderIndex: 2},
	}

	sorted := SortByOrder(lessons)
	for i, want := range []string{"a", "b", "c"} {
		if sorted[i].ID != want {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].ID, want)
		}
	}
	if lessons[0].ID != "c" {
		t.Error("SortByOrder mutated its input")
	}
}
