package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/quiz"
)

// Compile-time check that Store satisfies the collaborator interface.
var _ progression.ProgressStore = (*Store)(nil)

// FetchLessons returns the curriculum ordered by order index.
func (s *Store) FetchLessons(ctx context.Context) ([]progression.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_index, title, description, icon, color, place, lat, lon, xp_reward
		FROM lessons ORDER BY order_index`)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []progression.Lesson
	for rows.Next() {
		var l progression.Lesson
		if err := rows.Scan(&l.ID, &l.OrderIndex, &l.Title, &l.Description,
			&l.Icon, &l.Color, &l.Place, &l.Lat, &l.Lon, &l.XPReward); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// FetchCompletions returns the learner's completion records.
func (s *Store) FetchCompletions(ctx context.Context, learnerID string) ([]progression.CompletionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT lesson_id, completed, stars, completed_at
		FROM completions WHERE profile_id = ?`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer rows.Close()

	var recs []progression.CompletionRecord
	for rows.Next() {
		var rec progression.CompletionRecord
		var completed int
		var completedAt sql.NullString
		if err := rows.Scan(&rec.LessonID, &completed, &rec.Stars, &completedAt); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		rec.Completed = completed != 0
		if completedAt.Valid {
			t, err := time.Parse(time.RFC3339, completedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parse completed_at: %w", err)
			}
			rec.CompletedAt = &t
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// FetchProfile returns the profile with the given ID.
func (s *Store) FetchProfile(ctx context.Context, learnerID string) (progression.Profile, error) {
	return scanProfile(s.db.QueryRowContext(ctx, `
		SELECT id, username, xp, level, lives, frog_stage, last_frog_visit, created_at
		FROM profiles WHERE id = ?`, learnerID))
}

// LocalProfile returns the single local profile, creating it on first call.
// A fresh profile starts with full lives, no experience, and the frog seeded
// one stage into its growth with no recorded visit.
func (s *Store) LocalProfile(ctx context.Context) (progression.Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx, `
		SELECT id, username, xp, level, lives, frog_stage, last_frog_visit, created_at
		FROM profiles ORDER BY created_at LIMIT 1`))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return progression.Profile{}, err
	}

	username := os.Getenv("USER")
	if username == "" {
		username = "aprendiz"
	}
	p = progression.Profile{
		ID:        uuid.NewString(),
		Username:  username,
		XP:        0,
		Level:     1,
		Lives:     progression.MaxLives,
		FrogStage: progression.StageSeedDefault,
		CreatedAt: time.Now(),
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (id, username, xp, level, lives, frog_stage, last_frog_visit, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NULL, ?)`,
		p.ID, p.Username, p.XP, p.Level, p.Lives, p.FrogStage, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return progression.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// UpdateProfile applies a partial profile write. Nil fields stay untouched.
func (s *Store) UpdateProfile(ctx context.Context, learnerID string, update progression.ProfileUpdate) error {
	var sets []string
	var args []any

	if update.XP != nil {
		sets = append(sets, "xp = ?")
		args = append(args, *update.XP)
	}
	if update.Level != nil {
		sets = append(sets, "level = ?")
		args = append(args, *update.Level)
	}
	if update.Lives != nil {
		sets = append(sets, "lives = ?")
		args = append(args, *update.Lives)
	}
	if update.FrogStage != nil {
		sets = append(sets, "frog_stage = ?")
		args = append(args, *update.FrogStage)
	}
	if update.LastFrogVisit != nil {
		sets = append(sets, "last_frog_visit = ?")
		args = append(args, update.LastFrogVisit.Format(time.RFC3339))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, learnerID)
	res, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile %s not found", learnerID)
	}
	return nil
}

// UpsertCompletion creates or replaces the learner's record for a lesson.
func (s *Store) UpsertCompletion(ctx context.Context, learnerID string, record progression.CompletionRecord) error {
	return upsertCompletion(ctx, s.db, learnerID, record)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertCompletion(ctx context.Context, db execer, learnerID string, record progression.CompletionRecord) error {
	var completedAt any
	if record.CompletedAt != nil {
		completedAt = record.CompletedAt.Format(time.RFC3339)
	}
	completed := 0
	if record.Completed {
		completed = 1
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO completions (id, profile_id, lesson_id, completed, stars, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (profile_id, lesson_id) DO UPDATE SET
			completed = excluded.completed,
			stars = excluded.stars,
			completed_at = excluded.completed_at`,
		uuid.NewString(), learnerID, record.LessonID, completed, record.Stars, completedAt)
	if err != nil {
		return fmt.Errorf("upsert completion: %w", err)
	}
	return nil
}

// ApplyOutcome writes a full attempt delta in one transaction, so the
// profile and the completion record can never be observed out of step.
func (s *Store) ApplyOutcome(ctx context.Context, learnerID string, delta progression.ProfileDelta) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE profiles SET xp = ?, level = ?, lives = ? WHERE id = ?`,
		delta.XP, delta.Level, delta.Lives, learnerID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("rows affected: %w", err)
	} else if n == 0 {
		return fmt.Errorf("profile %s not found", learnerID)
	}

	if delta.Completion != nil {
		if err := upsertCompletion(ctx, tx, learnerID, *delta.Completion); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// FetchQuestions returns a lesson's question sequence in authored order.
func (s *Store) FetchQuestions(ctx context.Context, lessonID string) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, prompt, options, answer, pairs
		FROM questions WHERE lesson_id = ? ORDER BY position`, lessonID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []quiz.Question
	for rows.Next() {
		var q quiz.Question
		var kind string
		var options, pairs sql.NullString
		if err := rows.Scan(&q.ID, &kind, &q.Prompt, &options, &q.Answer, &pairs); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Kind = quiz.Kind(kind)
		if options.Valid {
			if err := json.Unmarshal([]byte(options.String), &q.Options); err != nil {
				return nil, fmt.Errorf("decode options for %s: %w", q.ID, err)
			}
		}
		if pairs.Valid {
			if err := json.Unmarshal([]byte(pairs.String), &q.Pairs); err != nil {
				return nil, fmt.Errorf("decode pairs for %s: %w", q.ID, err)
			}
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Reset wipes the learner's progress: completions are deleted and the
// profile returns to its initial state. Curriculum content is untouched.
func (s *Store) Reset(ctx context.Context, learnerID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM completions WHERE profile_id = ?`, learnerID); err != nil {
		return fmt.Errorf("delete completions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE profiles SET xp = 0, level = 1, lives = ?, frog_stage = ?, last_frog_visit = NULL
		WHERE id = ?`,
		progression.MaxLives, progression.StageSeedDefault, learnerID); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func scanProfile(row *sql.Row) (progression.Profile, error) {
	var p progression.Profile
	var lastVisit sql.NullString
	var createdAt string
	err := row.Scan(&p.ID, &p.Username, &p.XP, &p.Level, &p.Lives,
		&p.FrogStage, &lastVisit, &createdAt)
	if err != nil {
		return progression.Profile{}, err
	}
	if lastVisit.Valid {
		t, err := time.Parse(time.RFC3339, lastVisit.String)
		if err != nil {
			return progression.Profile{}, fmt.Errorf("parse last_frog_visit: %w", err)
		}
		p.LastFrogVisit = &t
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return progression.Profile{}, fmt.Errorf("parse created_at: %w", err)
	}
	return p, nil
}
