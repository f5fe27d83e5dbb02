package progression

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestApplyLessonOutcomeSuccess(t *testing.T) {
	profile := Profile{ID: "p1", XP: 80, Level: 1, Lives: 4}
	lesson := Lesson{ID: "l2", XPReward: 30}
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local)

	delta := ApplyLessonOutcome(profile, lesson, AttemptOutcome{Success: true, Stars: 3}, now)

	if delta.XP != 110 {
		t.Errorf("XP = %d, want 110", delta.XP)
	}
	if delta.Level != 2 {
		t.Errorf("Level = %d, want 2 (floor(110/100)+1)", delta.Level)
	}
	if delta.Lives != 4 {
		t.Errorf("Lives = %d, want 4 (success costs nothing)", delta.Lives)
	}
	if delta.Completion == nil {
		t.Fatal("Completion = nil, want record")
	}
	if delta.Completion.LessonID != "l2" || !delta.Completion.Completed || delta.Completion.Stars != 3 {
		t.Errorf("Completion = %+v", delta.Completion)
	}
	if delta.Completion.CompletedAt == nil || !delta.Completion.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", delta.Completion.CompletedAt, now)
	}
}

func TestApplyLessonOutcomeFailure(t *testing.T) {
	profile := Profile{ID: "p1", XP: 80, Level: 1, Lives: 4}
	lesson := Lesson{ID: "l2", XPReward: 30}
	now := time.Now()

	delta := ApplyLessonOutcome(profile, lesson, AttemptOutcome{}, now)

	if delta.XP != 80 || delta.Level != 1 {
		t.Errorf("failure changed experience: %+v", delta)
	}
	if delta.Lives != 3 {
		t.Errorf("Lives = %d, want 3", delta.Lives)
	}
	if delta.Completion != nil {
		t.Errorf("failure wrote a completion: %+v", delta.Completion)
	}
}

func TestApplyLessonOutcomeLivesFloor(t *testing.T) {
	profile := Profile{Lives: 0}
	delta := ApplyLessonOutcome(profile, Lesson{}, AttemptOutcome{}, time.Now())
	if delta.Lives != 0 {
		t.Errorf("Lives = %d, want 0 (never negative)", delta.Lives)
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{110, 2},
		{250, 3},
		{-10, 1},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestRollerStarsRange(t *testing.T) {
	r := NewRoller(rand.NewPCG(1, 2))

	successes := 0
	for i := 0; i < 1000; i++ {
		o := r.Roll()
		if o.Success {
			successes++
			if o.Stars < 1 || o.Stars > 3 {
				t.Fatalf("stars = %d, want 1..3", o.Stars)
			}
		} else if o.Stars != 0 {
			t.Fatalf("failed attempt awarded %d stars", o.Stars)
		}
	}

	// With p=0.7 over 1000 draws this band is safely wide.
	if successes < 600 || successes > 800 {
		t.Errorf("successes = %d, want roughly 700", successes)
	}
}
