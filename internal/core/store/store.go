// Package store holds the in-memory domain state: the user collection, the
// activity collection and the single current session. Every mutation runs to
// completion under one lock and mirrors the affected collection to the
// durable adapter before returning, so persistence always happens in the
// same turn as the mutation that triggered it.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// Session is the single current-user reference. It lives only in memory;
// nothing about it is persisted, so a process restart always starts
// unauthenticated.
type Session struct {
	User  domain.User
	Nonce string
}

// Store is the constructor-injected state container. There are no ambient
// singletons; every consumer receives the same *Store by reference.
type Store struct {
	mu         sync.Mutex
	users      []domain.User
	activities []domain.Activity
	session    *Session
	nextID     int64

	adapter ports.CollectionStore
	log     zerolog.Logger
}

func New(adapter ports.CollectionStore, log zerolog.Logger) *Store {
	return &Store{adapter: adapter, log: log}
}

// Seed loads both durable collections, merges the built-in Admin accounts by
// id without duplication, seeds the id counter above every known id, and
// writes the merged user collection back. Called once at process start.
func (s *Store) Seed(ctx context.Context) error {
	users, err := s.adapter.LoadUsers(ctx)
	if err != nil {
		return err
	}
	activities, err := s.adapter.LoadActivities(ctx)
	if err != nil {
		return err
	}

	for _, admin := range domain.DefaultAdmins() {
		present := false
		for _, u := range users {
			if u.ID == admin.ID {
				present = true
				break
			}
		}
		if !present {
			users = append(users, admin)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = users
	s.activities = activities

	s.nextID = 1000
	for _, u := range s.users {
		if u.ID > s.nextID {
			s.nextID = u.ID
		}
	}
	for _, a := range s.activities {
		if a.ID > s.nextID {
			s.nextID = a.ID
		}
	}

	s.persistUsers(ctx)
	s.persistActivities(ctx)

	s.log.Info().
		Int("users", len(s.users)).
		Int("activities", len(s.activities)).
		Msg("store seeded")
	return nil
}

// allocID returns the next id from the monotonic counter. Ids are
// store-assigned only; caller-supplied ids are never honored, which closes
// the wall-clock collision risk of timestamp-derived keys.
func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

// persistUsers mirrors the user collection to durable storage. Writes are
// fire-and-forget from the caller's perspective: a failure is logged and the
// in-memory mutation stands.
func (s *Store) persistUsers(ctx context.Context) {
	if err := s.adapter.SaveUsers(ctx, s.users); err != nil {
		s.log.Error().Err(err).Msg("failed to persist users")
	}
}

func (s *Store) persistActivities(ctx context.Context) {
	if err := s.adapter.SaveActivities(ctx, s.activities); err != nil {
		s.log.Error().Err(err).Msg("failed to persist activities")
	}
}

// Users returns a copy of the user collection, most recently added first.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) UserByID(id int64) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// AddUser inserts a new user at the head of the collection. The store
// assigns the id.
func (s *Store) AddUser(ctx context.Context, u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.allocID()
	s.users = append([]domain.User{u}, s.users...)
	s.persistUsers(ctx)
	return u
}

// UpdateUser replaces the record with the same id. When the updated record
// is the logged-in user, the live session copy is refreshed in place so a
// self-edit is visible without re-login.
func (s *Store) UpdateUser(ctx context.Context, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			if s.session != nil && s.session.User.ID == u.ID {
				s.session.User = u
			}
			s.persistUsers(ctx)
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// RemoveUser deletes the record. Activities owned by the removed user are
// left in place, attributed to an unresolvable owner.
func (s *Store) RemoveUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.persistUsers(ctx)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Activities returns a copy of the activity collection, most recently
// created first.
func (s *Store) Activities() []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

func (s *Store) ActivityByID(id int64) (domain.Activity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.activities {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Activity{}, false
}

// AddActivity creates an activity for userID. Id and creation instant are
// assigned here, never by the caller.
func (s *Store) AddActivity(ctx context.Context, userID int64, date, text string) domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.Activity{
		ID:        s.allocID(),
		UserID:    userID,
		Date:      date,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.activities = append([]domain.Activity{a}, s.activities...)
	s.persistActivities(ctx)
	return a
}

// UpdateActivity edits date and/or text; an empty argument keeps the prior
// value. Owner and id are immutable. UpdatedAt is stamped on every edit.
func (s *Store) UpdateActivity(ctx context.Context, id int64, date, text string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		if date != "" {
			s.activities[i].Date = date
		}
		if text != "" {
			s.activities[i].Text = text
		}
		now := time.Now()
		s.activities[i].UpdatedAt = &now
		s.persistActivities(ctx)
		return s.activities[i], nil
	}
	return domain.Activity{}, domain.ErrActivityNotFound
}

func (s *Store) RemoveActivity(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			s.persistActivities(ctx)
			return nil
		}
	}
	return domain.ErrActivityNotFound
}

// Login replaces the current session. Neither collection is touched.
func (s *Store) Login(u domain.User, nonce string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &Session{User: u, Nonce: nonce}
}

// Logout clears the current session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Session returns a copy of the current session, if any.
func (s *Store) Session() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}
