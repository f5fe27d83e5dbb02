package progression

import (
	"context"
	"fmt"
	"time"
)

// ProfileUpdate is a partial profile write. Nil fields are left untouched.
type ProfileUpdate struct {
	XP            *int
	Level         *int
	Lives         *int
	FrogStage     *int
	LastFrogVisit *time.Time
}

// ProgressStore is the durable collaborator the engines read and write
// through. Implementations own their schema and transport; the engines never
// retry a failed call, they surface it to the caller.
type ProgressStore interface {
	FetchLessons(ctx context.Context) ([]Lesson, error)
	FetchCompletions(ctx context.Context, learnerID string) ([]CompletionRecord, error)
	FetchProfile(ctx context.Context, learnerID string) (Profile, error)
	UpdateProfile(ctx context.Context, learnerID string, update ProfileUpdate) error
	UpsertCompletion(ctx context.Context, learnerID string, record CompletionRecord) error

	// ApplyOutcome writes a full attempt delta in one transaction, so
	// experience and completion state move together.
	ApplyOutcome(ctx context.Context, learnerID string, delta ProfileDelta) error
}

// Snapshot is the in-memory view one session works against.
type Snapshot struct {
	Profile     Profile
	Lessons     []Lesson
	Completions []CompletionRecord
}

// Service sequences the pure engines around the store. All engine calls are
// value-in/value-out; the service owns fetch, persist, and ordering.
type Service struct {
	store ProgressStore
}

// NewService creates a Service over the given store.
func NewService(store ProgressStore) *Service {
	return &Service{store: store}
}

// Load fetches the learner's full snapshot: profile, curriculum in order,
// and completion records.
func (s *Service) Load(ctx context.Context, learnerID string) (*Snapshot, error) {
	profile, err := s.store.FetchProfile(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	lessons, err := s.store.FetchLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch lessons: %w", err)
	}
	completions, err := s.store.FetchCompletions(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("fetch completions: %w", err)
	}
	return &Snapshot{
		Profile:     profile,
		Lessons:     SortByOrder(lessons),
		Completions: completions,
	}, nil
}

// VisitFrog runs the streak engine for a habitat visit and returns the
// profile as stored afterwards. The write is awaited and the profile
// re-read before returning, so callers always render persisted state.
func (s *Service) VisitFrog(ctx context.Context, learnerID string, now time.Time) (Profile, error) {
	profile, err := s.store.FetchProfile(ctx, learnerID)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch profile: %w", err)
	}

	result := ComputeNextStage(profile.FrogStage, profile.LastFrogVisit, now)
	if !result.ShouldPersist {
		return profile, nil
	}

	update := ProfileUpdate{
		FrogStage:     &result.NextStage,
		LastFrogVisit: &now,
	}
	if err := s.store.UpdateProfile(ctx, learnerID, update); err != nil {
		return Profile{}, fmt.Errorf("persist frog stage: %w", err)
	}

	profile, err = s.store.FetchProfile(ctx, learnerID)
	if err != nil {
		return Profile{}, fmt.Errorf("re-read profile: %w", err)
	}
	return profile, nil
}

// CheckAttempt verifies a lesson may be attempted right now. It returns the
// lesson on success and one of ErrNoLivesRemaining, ErrAlreadyCompleted, or
// LockedLessonError when the attempt is rejected. Rejection mutates nothing.
func (s *Service) CheckAttempt(ctx context.Context, learnerID, lessonID string) (Lesson, error) {
	snap, err := s.Load(ctx, learnerID)
	if err != nil {
		return Lesson{}, err
	}
	for _, lesson := range snap.Lessons {
		if lesson.ID == lessonID {
			if err := CanAttempt(snap.Profile, lesson, snap.Lessons, snap.Completions); err != nil {
				return Lesson{}, err
			}
			return lesson, nil
		}
	}
	return Lesson{}, fmt.Errorf("lesson %q not found", lessonID)
}

// ResolveAttempt applies an attempt outcome to the learner's profile and
// persists the resulting delta atomically. The returned delta reflects what
// was written.
func (s *Service) ResolveAttempt(ctx context.Context, learnerID string, lesson Lesson, outcome AttemptOutcome, now time.Time) (ProfileDelta, error) {
	profile, err := s.store.FetchProfile(ctx, learnerID)
	if err != nil {
		return ProfileDelta{}, fmt.Errorf("fetch profile: %w", err)
	}

	delta := ApplyLessonOutcome(profile, lesson, outcome, now)
	if err := s.store.ApplyOutcome(ctx, learnerID, delta); err != nil {
		return ProfileDelta{}, fmt.Errorf("persist outcome: %w", err)
	}
	return delta, nil
}
