package store

// migrate creates the schema when it doesn't exist yet. Timestamps are
// stored as RFC 3339 text; question options and pairs as JSON text.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id              TEXT PRIMARY KEY,
		username        TEXT NOT NULL,
		xp              INTEGER NOT NULL DEFAULT 0,
		level           INTEGER NOT NULL DEFAULT 1,
		lives           INTEGER NOT NULL DEFAULT 5,
		frog_stage      INTEGER NOT NULL DEFAULT 1,
		last_frog_visit TEXT,
		created_at      TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS lessons (
		id          TEXT PRIMARY KEY,
		order_index INTEGER NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		icon        TEXT NOT NULL DEFAULT 'book-open',
		color       TEXT NOT NULL DEFAULT 'blue',
		place       TEXT NOT NULL DEFAULT '',
		lat         REAL NOT NULL DEFAULT 0,
		lon         REAL NOT NULL DEFAULT 0,
		xp_reward   INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS questions (
		id        TEXT PRIMARY KEY,
		lesson_id TEXT NOT NULL REFERENCES lessons(id),
		position  INTEGER NOT NULL,
		kind      TEXT NOT NULL,
		prompt    TEXT NOT NULL,
		options   TEXT,
		answer    TEXT NOT NULL DEFAULT '',
		pairs     TEXT,
		UNIQUE (lesson_id, position)
	);

	CREATE TABLE IF NOT EXISTS completions (
		id           TEXT PRIMARY KEY,
		profile_id   TEXT NOT NULL REFERENCES profiles(id),
		lesson_id    TEXT NOT NULL REFERENCES lessons(id),
		completed    INTEGER NOT NULL DEFAULT 0,
		stars        INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		UNIQUE (profile_id, lesson_id)
	);

	CREATE INDEX IF NOT EXISTS idx_questions_lesson ON questions(lesson_id, position);
	CREATE INDEX IF NOT EXISTS idx_completions_profile ON completions(profile_id);
	`

	_, err := s.db.Exec(schema)
	return err
}
