package progression

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeStore is an in-memory ProgressStore for service tests.
type fakeStore struct {
	profile     Profile
	lessons     []Lesson
	completions []CompletionRecord

	updateCalls  int
	outcomeCalls int
	failUpdate   error
}

func (f *fakeStore) FetchLessons(ctx context.Context) ([]Lesson, error) {
	return f.lessons, nil
}

func (f *fakeStore) FetchCompletions(ctx context.Context, learnerID string) ([]CompletionRecord, error) {
	return f.completions, nil
}

func (f *fakeStore) FetchProfile(ctx context.Context, learnerID string) (Profile, error) {
	return f.profile, nil
}

func (f *fakeStore) UpdateProfile(ctx context.Context, learnerID string, update ProfileUpdate) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	f.updateCalls++
	if update.XP != nil {
		f.profile.XP = *update.XP
	}
	if update.Level != nil {
		f.profile.Level = *update.Level
	}
	if update.Lives != nil {
		f.profile.Lives = *update.Lives
	}
	if update.FrogStage != nil {
		f.profile.FrogStage = *update.FrogStage
	}
	if update.LastFrogVisit != nil {
		v := *update.LastFrogVisit
		f.profile.LastFrogVisit = &v
	}
	return nil
}

func (f *fakeStore) UpsertCompletion(ctx context.Context, learnerID string, record CompletionRecord) error {
	for i, c := range f.completions {
		if c.LessonID == record.LessonID {
			f.completions[i] = record
			return nil
		}
	}
	f.completions = append(f.completions, record)
	return nil
}

func (f *fakeStore) ApplyOutcome(ctx context.Context, learnerID string, delta ProfileDelta) error {
	f.outcomeCalls++
	f.profile.XP = delta.XP
	f.profile.Level = delta.Level
	f.profile.Lives = delta.Lives
	if delta.Completion != nil {
		return f.UpsertCompletion(ctx, learnerID, *delta.Completion)
	}
	return nil
}

func TestVisitFrogFirstVisitPersists(t *testing.T) {
	store := &fakeStore{profile: Profile{ID: "p1", FrogStage: StageSeedDefault}}
	svc := NewService(store)

	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)
	profile, err := svc.VisitFrog(context.Background(), "p1", now)
	if err != nil {
		t.Fatal(err)
	}

	if profile.FrogStage != StageSeedDefault {
		t.Errorf("FrogStage = %d, want %d", profile.FrogStage, StageSeedDefault)
	}
	if profile.LastFrogVisit == nil || !profile.LastFrogVisit.Equal(now) {
		t.Errorf("LastFrogVisit = %v, want %v", profile.LastFrogVisit, now)
	}
	if store.updateCalls != 1 {
		t.Errorf("updateCalls = %d, want 1", store.updateCalls)
	}
}

func TestVisitFrogSameDayIsIdempotent(t *testing.T) {
	visit := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.Local)
	store := &fakeStore{profile: Profile{ID: "p1", FrogStage: 2, LastFrogVisit: &visit}}
	svc := NewService(store)

	now := visit.Add(4 * time.Hour)
	profile, err := svc.VisitFrog(context.Background(), "p1", now)
	if err != nil {
		t.Fatal(err)
	}

	if profile.FrogStage != 2 {
		t.Errorf("FrogStage = %d, want 2", profile.FrogStage)
	}
	if store.updateCalls != 0 {
		t.Errorf("updateCalls = %d, want 0 (same-day re-entry)", store.updateCalls)
	}
}

func TestVisitFrogSurfacesPersistenceFailure(t *testing.T) {
	visit := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.Local)
	boom := errors.New("disk full")
	store := &fakeStore{
		profile:    Profile{ID: "p1", FrogStage: 2, LastFrogVisit: &visit},
		failUpdate: boom,
	}
	svc := NewService(store)

	_, err := svc.VisitFrog(context.Background(), "p1", visit.AddDate(0, 0, 1))
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want wrapped store error", err)
	}
	if store.profile.FrogStage != 2 {
		t.Error("failed persist mutated the stored stage")
	}
}

func TestCheckAttemptRejectionsMutateNothing(t *testing.T) {
	store := &fakeStore{
		profile: Profile{ID: "p1", Lives: 0},
		lessons: curriculum(),
	}
	svc := NewService(store)

	_, err := svc.CheckAttempt(context.Background(), "p1", "l1")
	if !errors.Is(err, ErrNoLivesRemaining) {
		t.Fatalf("got %v, want ErrNoLivesRemaining", err)
	}
	if store.updateCalls != 0 || store.outcomeCalls != 0 {
		t.Error("rejected attempt reached the store")
	}

	store.profile.Lives = 3
	store.completions = completed("l1")
	_, err = svc.CheckAttempt(context.Background(), "p1", "l1")
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("got %v, want ErrAlreadyCompleted", err)
	}
}

func TestResolveAttemptEndToEnd(t *testing.T) {
	store := &fakeStore{
		profile: Profile{ID: "p1", XP: 80, Level: 1, Lives: 5},
		lessons: curriculum(),
	}
	svc := NewService(store)
	lesson := Lesson{ID: "l1", OrderIndex: 1, XPReward: 30}

	delta, err := svc.ResolveAttempt(context.Background(), "p1", lesson,
		AttemptOutcome{Success: true, Stars: 2}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if delta.XP != 110 || delta.Level != 2 {
		t.Errorf("delta = %+v, want XP 110 level 2", delta)
	}
	if store.outcomeCalls != 1 {
		t.Errorf("outcomeCalls = %d, want 1 (single atomic write)", store.outcomeCalls)
	}
	if store.profile.XP != 110 || store.profile.Level != 2 {
		t.Errorf("stored profile = %+v", store.profile)
	}
	if len(store.completions) != 1 || !store.completions[0].Completed {
		t.Errorf("completions = %+v", store.completions)
	}
}
