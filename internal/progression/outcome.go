package progression

import (
	"math/rand/v2"
	"time"
)

// SuccessProbability is the chance a lesson attempt succeeds. The roll is
// independent of the quiz score: the session is pedagogical display, the
// roll decides the outcome.
const SuccessProbability = 0.7

// AttemptOutcome is the stochastic result of one lesson attempt. Success and
// star count are independent draws.
type AttemptOutcome struct {
	Success bool
	Stars   int // 1..3 on success, 0 on failure
}

// Roller produces attempt outcomes. Tests substitute a deterministic source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a Roller from the given source. A nil source falls back
// to a time-seeded PCG.
func NewRoller(src rand.Source) *Roller {
	if src == nil {
		now := time.Now()
		src = rand.NewPCG(uint64(now.UnixNano()), uint64(now.Nanosecond()))
	}
	return &Roller{rng: rand.New(src)}
}

// Roll draws a fresh attempt outcome.
func (r *Roller) Roll() AttemptOutcome {
	success := r.rng.Float64() < SuccessProbability
	stars := 0
	if success {
		stars = r.rng.IntN(3) + 1
	}
	return AttemptOutcome{Success: success, Stars: stars}
}

// ProfileDelta is the full set of mutations one attempt produces. It is
// applied as a single atomic store write so experience and completion state
// can never be observed out of step.
type ProfileDelta struct {
	XP         int
	Level      int
	Lives      int
	Completion *CompletionRecord // nil on failure
}

// ApplyLessonOutcome computes the mutations for an attempt outcome without
// touching the inputs. Success awards the lesson's experience, recomputes
// the level, and marks the lesson complete with the rolled stars. Failure
// costs one life (never below zero) and changes nothing else.
func ApplyLessonOutcome(profile Profile, lesson Lesson, outcome AttemptOutcome, now time.Time) ProfileDelta {
	delta := ProfileDelta{
		XP:    profile.XP,
		Level: profile.Level,
		Lives: profile.Lives,
	}

	if !outcome.Success {
		if delta.Lives > 0 {
			delta.Lives--
		}
		return delta
	}

	delta.XP = profile.XP + lesson.XPReward
	delta.Level = LevelForXP(delta.XP)
	completedAt := now
	delta.Completion = &CompletionRecord{
		LessonID:    lesson.ID,
		Completed:   true,
		Stars:       outcome.Stars,
		CompletedAt: &completedAt,
	}
	return delta
}
