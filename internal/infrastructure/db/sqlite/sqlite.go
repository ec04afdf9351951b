// Package sqlite implements the persistent store adapter over an embedded
// SQLite file. The layout mirrors a key-value store: one row per named
// collection, holding the whole collection as a JSON payload. There is no
// versioning field and no checksum; a corrupt payload degrades to an empty
// collection on load, favoring availability over strictness.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

// The two durable entries. The names are kept from the original storage
// layout so an exported payload stays recognizable.
const (
	collectionUsers      = "users_data"
	collectionActivities = "activities_data"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

func New(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// load fetches the named collection's raw payload. An absent row yields an
// empty payload and no error.
func (s *Store) load(ctx context.Context, name string) (string, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, name,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return payload, nil
}

// save overwrites the named collection. Idempotent: saving the same records
// twice leaves the same durable value.
func (s *Store) save(ctx context.Context, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *Store) LoadUsers(ctx context.Context) ([]domain.User, error) {
	payload, err := s.load(ctx, collectionUsers)
	if err != nil || payload == "" {
		return nil, err
	}
	var users []domain.User
	if err := json.Unmarshal([]byte(payload), &users); err != nil {
		s.log.Warn().Str("collection", collectionUsers).Err(err).Msg("corrupt payload, starting empty")
		return nil, nil
	}
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.save(ctx, collectionUsers, users)
}

func (s *Store) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	payload, err := s.load(ctx, collectionActivities)
	if err != nil || payload == "" {
		return nil, err
	}
	var activities []domain.Activity
	if err := json.Unmarshal([]byte(payload), &activities); err != nil {
		s.log.Warn().Str("collection", collectionActivities).Err(err).Msg("corrupt payload, starting empty")
		return nil, nil
	}
	return activities, nil
}

func (s *Store) SaveActivities(ctx context.Context, activities []domain.Activity) error {
	return s.save(ctx, collectionActivities, activities)
}
