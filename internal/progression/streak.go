package progression

import "time"

// StageResult is the outcome of a frog habitat visit.
type StageResult struct {
	NextStage     int
	ShouldPersist bool
}

// SameCalendarDay reports whether two instants fall on the same calendar day.
// Days are compared on local wall-clock year/month/day fields, not on elapsed
// duration, so 23:59 and 00:01 are different days even though only two
// minutes apart. The machine's local time zone is the single policy for all
// day-boundary decisions.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ComputeNextStage decides the frog's next growth stage for a visit at now.
//
// A nil lastVisit is the first recorded visit: the stage is kept and the
// result persists so the visit timestamp gets written. Re-entry on the same
// calendar day is a no-op. A visit on the next calendar day grows the frog
// one stage (capped at StageFinal); this includes visits less than 24h apart
// that still cross midnight. Missing a full day resets the frog to the egg.
// Every calendar-day change persists, even when the stage value is unchanged
// (an adult frog visited daily keeps its visit timestamp current).
func ComputeNextStage(currentStage int, lastVisit *time.Time, now time.Time) StageResult {
	stage := clampStage(currentStage)

	if lastVisit == nil {
		return StageResult{NextStage: stage, ShouldPersist: true}
	}

	if SameCalendarDay(now, *lastVisit) {
		return StageResult{NextStage: stage, ShouldPersist: false}
	}

	elapsed := now.Sub(*lastVisit)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := int(elapsed.Hours() / 24)
	if days <= 1 {
		// Consecutive calendar day, including the sub-24h midnight crossing.
		if stage < StageFinal {
			stage++
		}
	} else {
		stage = StageEgg
	}

	return StageResult{NextStage: stage, ShouldPersist: true}
}

func clampStage(stage int) int {
	if stage < StageEgg {
		return StageEgg
	}
	if stage > StageFinal {
		return StageFinal
	}
	return stage
}
