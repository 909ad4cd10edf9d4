package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/akarpov/mentora/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas, runs auto-migration, and seeds the
// global sequence counter.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Students returns the student account repository.
func (s *Store) Students() StudentRepo {
	return &studentRepo{client: s.client}
}

// Attempts returns the attempt event repository.
func (s *Store) Attempts() AttemptRepo {
	return &attemptRepo{client: s.client, seq: s.seq}
}

// Assessments returns the assessment event repository.
func (s *Store) Assessments() AssessmentRepo {
	return &assessmentRepo{client: s.client, seq: s.seq}
}

// LLMEvents returns the LLM request event repository.
func (s *Store) LLMEvents() LLMEventRepo {
	return &llmEventRepo{client: s.client, seq: s.seq}
}

// Achievements returns the achievement unlock repository.
func (s *Store) Achievements() AchievementRepo {
	return &achievementRepo{client: s.client, seq: s.seq}
}

// Progress returns the reader that assembles adaptive-core inputs.
func (s *Store) Progress() ProgressReader {
	return &progressReader{client: s.client}
}

// applyPragmas configures SQLite for service use: WAL for concurrent
// readers under a writing handler, a busy timeout instead of immediate
// SQLITE_BUSY errors.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
