package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/quiz"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "jilata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsCurriculum(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	lessons, err := s.FetchLessons(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 4)
	require.Equal(t, "Saludos", lessons[0].Title)
	require.Equal(t, "Desaguadero", lessons[0].Place)

	for i := 1; i < len(lessons); i++ {
		require.Greater(t, lessons[i].OrderIndex, lessons[i-1].OrderIndex)
	}

	questions, err := s.FetchQuestions(ctx, lessons[0].ID)
	require.NoError(t, err)
	require.Len(t, questions, 4)
	for _, q := range questions {
		require.NoError(t, q.Validate())
	}
	require.Equal(t, quiz.KindMatching, questions[3].Kind)
	require.Len(t, questions[3].Pairs, 3)
}

func TestLocalProfileCreatedOnce(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p1, err := s.LocalProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, progression.MaxLives, p1.Lives)
	require.Equal(t, progression.StageSeedDefault, p1.FrogStage)
	require.Nil(t, p1.LastFrogVisit)
	require.Equal(t, 1, p1.Level)

	p2, err := s.LocalProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, p1.ID, p2.ID)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p, err := s.LocalProfile(ctx)
	require.NoError(t, err)

	stage := 3
	visit := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	err = s.UpdateProfile(ctx, p.ID, progression.ProfileUpdate{
		FrogStage:     &stage,
		LastFrogVisit: &visit,
	})
	require.NoError(t, err)

	got, err := s.FetchProfile(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.FrogStage)
	require.NotNil(t, got.LastFrogVisit)
	require.True(t, got.LastFrogVisit.Equal(visit))
	// Untouched fields keep their values.
	require.Equal(t, p.Lives, got.Lives)
	require.Equal(t, p.XP, got.XP)
}

func TestUpdateProfileUnknownLearner(t *testing.T) {
	s := testStore(t)
	lives := 2
	err := s.UpdateProfile(context.Background(), "nope", progression.ProfileUpdate{Lives: &lives})
	require.Error(t, err)
}

func TestApplyOutcomeAtomic(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p, err := s.LocalProfile(ctx)
	require.NoError(t, err)
	lessons, err := s.FetchLessons(ctx)
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	delta := progression.ApplyLessonOutcome(p, lessons[0],
		progression.AttemptOutcome{Success: true, Stars: 2}, now)
	require.NoError(t, s.ApplyOutcome(ctx, p.ID, delta))

	got, err := s.FetchProfile(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, lessons[0].XPReward, got.XP)
	require.Equal(t, progression.LevelForXP(got.XP), got.Level)

	recs, err := s.FetchCompletions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.True(t, recs[0].Completed)
	require.Equal(t, 2, recs[0].Stars)
	require.Equal(t, lessons[0].ID, recs[0].LessonID)
}

func TestUpsertCompletionReplaces(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p, err := s.LocalProfile(ctx)
	require.NoError(t, err)
	lessons, err := s.FetchLessons(ctx)
	require.NoError(t, err)

	rec := progression.CompletionRecord{LessonID: lessons[0].ID, Completed: false}
	require.NoError(t, s.UpsertCompletion(ctx, p.ID, rec))

	now := time.Now()
	rec.Completed = true
	rec.Stars = 3
	rec.CompletedAt = &now
	require.NoError(t, s.UpsertCompletion(ctx, p.ID, rec))

	recs, err := s.FetchCompletions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.True(t, recs[0].Completed)
	require.Equal(t, 3, recs[0].Stars)
}

func TestResetRestoresInitialState(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p, err := s.LocalProfile(ctx)
	require.NoError(t, err)
	lessons, err := s.FetchLessons(ctx)
	require.NoError(t, err)

	delta := progression.ApplyLessonOutcome(p, lessons[0],
		progression.AttemptOutcome{Success: true, Stars: 1}, time.Now())
	require.NoError(t, s.ApplyOutcome(ctx, p.ID, delta))

	require.NoError(t, s.Reset(ctx, p.ID))

	got, err := s.FetchProfile(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.XP)
	require.Equal(t, 1, got.Level)
	require.Equal(t, progression.MaxLives, got.Lives)
	require.Equal(t, progression.StageSeedDefault, got.FrogStage)
	require.Nil(t, got.LastFrogVisit)

	recs, err := s.FetchCompletions(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestServiceOverSQLite(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p, err := s.LocalProfile(ctx)
	require.NoError(t, err)

	svc := progression.NewService(s)
	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)

	// First visit records the timestamp without growing the frog.
	got, err := svc.VisitFrog(ctx, p.ID, now)
	require.NoError(t, err)
	require.Equal(t, progression.StageSeedDefault, got.FrogStage)
	require.NotNil(t, got.LastFrogVisit)

	// Next calendar day grows it.
	got, err = svc.VisitFrog(ctx, p.ID, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, progression.StageSeedDefault+1, got.FrogStage)

	// A three-day absence resets to the egg.
	got, err = svc.VisitFrog(ctx, p.ID, now.AddDate(0, 0, 4))
	require.NoError(t, err)
	require.Equal(t, progression.StageEgg, got.FrogStage)
}
