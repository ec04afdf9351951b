package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
	"github.com/Ajayhariharan/activax/internal/core/store"
)

// PermissionService owns the permission drafts: an explicit map keyed by
// target user id, edited with single-field toggles and flushed to the user
// record only on commit. Discard (or never committing) leaves the committed
// matrix untouched. The machine has no terminal state; a user's matrix can
// be re-entered indefinitely.
type PermissionService struct {
	mu     sync.Mutex
	drafts map[int64]domain.Permissions

	store  *store.Store
	logger zerolog.Logger
}

func NewPermissionService(st *store.Store, logger zerolog.Logger) *PermissionService {
	return &PermissionService{
		drafts: make(map[int64]domain.Permissions),
		store:  st,
		logger: logger,
	}
}

// team resolves the target user and checks that actor is the target's own
// Manager; only that Manager may touch the target's matrix.
func (s *PermissionService) target(actor domain.User, userID int64) (domain.User, error) {
	if actor.Role != domain.RoleManager {
		return domain.User{}, domain.ErrForbidden
	}
	target, ok := s.store.UserByID(userID)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	if !target.ManagedBy(actor.ID) {
		return domain.User{}, domain.ErrForbidden
	}
	return target, nil
}

// Team returns the actor's team with committed matrices and any open drafts.
func (s *PermissionService) Team(actor domain.User) ([]ports.TeamPermissions, error) {
	if actor.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ports.TeamPermissions
	for _, u := range s.store.Users() {
		if !u.ManagedBy(actor.ID) {
			continue
		}
		row := ports.TeamPermissions{User: u, Committed: u.EffectivePermissions()}
		if d, ok := s.drafts[u.ID]; ok {
			draft := d
			row.Draft = &draft
		}
		out = append(out, row)
	}
	return out, nil
}

// Begin opens a draft for the target, seeded from the committed matrix. An
// already-open draft is returned as-is.
func (s *PermissionService) Begin(actor domain.User, userID int64) (domain.Permissions, error) {
	target, err := s.target(actor, userID)
	if err != nil {
		return domain.Permissions{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.drafts[userID]; ok {
		return d, nil
	}
	d := target.EffectivePermissions()
	s.drafts[userID] = d
	return d, nil
}

// Toggle applies one single-field transition to the draft.
func (s *PermissionService) Toggle(actor domain.User, userID int64, field string, value bool) (domain.Permissions, error) {
	if _, err := s.target(actor, userID); err != nil {
		return domain.Permissions{}, err
	}
	if !domain.ValidPermField(field) {
		return domain.Permissions{}, domain.ErrInvalidPerm
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[userID]
	if !ok {
		return domain.Permissions{}, domain.ErrNoDraft
	}
	next, applied := d.Apply(field, value)
	if !applied {
		// Only the view-lock rule can reject a known field.
		return d, domain.ErrViewLocked
	}
	s.drafts[userID] = next
	return next, nil
}

// Commit persists the draft to the target's record and drops the draft.
func (s *PermissionService) Commit(ctx context.Context, actor domain.User, userID int64) (*domain.User, error) {
	target, err := s.target(actor, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	d, ok := s.drafts[userID]
	if ok {
		delete(s.drafts, userID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, domain.ErrNoDraft
	}

	target.ActivityPermissions = &d
	updated, err := s.store.UpdateUser(ctx, target)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Int64("user_id", userID).
		Bool("view", d.View).Bool("add", d.Add).Bool("edit", d.Edit).Bool("delete", d.Delete).
		Msg("permissions committed")
	return &updated, nil
}

// Discard drops the draft without touching the committed matrix. Discarding
// a nonexistent draft is a no-op.
func (s *PermissionService) Discard(actor domain.User, userID int64) error {
	if _, err := s.target(actor, userID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.drafts, userID)
	s.mu.Unlock()
	return nil
}
