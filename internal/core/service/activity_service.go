package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
	"github.com/Ajayhariharan/activax/internal/core/store"
)

// ActivityService implements the journal surface: the owner's my-activity
// operations, gated by the permission matrix, and the Admin/Manager
// oversight view.
type ActivityService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewActivityService(st *store.Store, logger zerolog.Logger) *ActivityService {
	return &ActivityService{store: st, logger: logger}
}

// Mine lists the actor's own activities, newest creation first. The view
// grant gates the whole page.
func (s *ActivityService) Mine(actor domain.User) ([]domain.Activity, error) {
	if actor.Role != domain.RoleUser {
		return nil, domain.ErrForbidden
	}
	if !actor.EffectivePermissions().View {
		return nil, domain.ErrPermissionDenied
	}

	var out []domain.Activity
	for _, a := range s.store.Activities() {
		if a.UserID == actor.ID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Add creates an activity owned by the actor. Requires the add grant; an
// empty date defaults to today's local date. The store assigns id and
// creation instant regardless of anything the caller might suggest.
func (s *ActivityService) Add(ctx context.Context, actor domain.User, date, text string) (*domain.Activity, error) {
	if !CanAddActivity(actor) {
		return nil, domain.ErrPermissionDenied
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyActivityText
	}
	if date == "" {
		date = domain.LocalDate(timeNow())
	}
	if !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}

	created := s.store.AddActivity(ctx, actor.ID, date, text)
	s.logger.Info().Int64("activity_id", created.ID).Int64("user_id", actor.ID).Msg("activity added")
	return &created, nil
}

// Update edits date and/or text of an activity within the actor's mutation
// scope.
func (s *ActivityService) Update(ctx context.Context, actor domain.User, id int64, date, text string) (*domain.Activity, error) {
	act, ok := s.store.ActivityByID(id)
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if !CanEditActivity(actor, act, s.owner(act)) {
		return nil, domain.ErrPermissionDenied
	}
	if date != "" && !domain.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}

	updated, err := s.store.UpdateActivity(ctx, id, date, strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("activity_id", id).Int64("actor_id", actor.ID).Msg("activity updated")
	return &updated, nil
}

// Remove deletes an activity within the actor's mutation scope.
func (s *ActivityService) Remove(ctx context.Context, actor domain.User, id int64) error {
	act, ok := s.store.ActivityByID(id)
	if !ok {
		return domain.ErrActivityNotFound
	}
	if !CanDeleteActivity(actor, act, s.owner(act)) {
		return domain.ErrPermissionDenied
	}
	if err := s.store.RemoveActivity(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("activity_id", id).Int64("actor_id", actor.ID).Msg("activity removed")
	return nil
}

// Browse is the Admin/Manager oversight listing with the layered manager
// scope, user and date filters.
func (s *ActivityService) Browse(actor domain.User, in ports.BrowseActivitiesInput) ([]domain.Activity, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}
	out := VisibleActivities(actor, s.store.Users(), s.store.Activities(), in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// owner resolves an activity's owning user, nil when the reference dangles
// (the owner was deleted).
func (s *ActivityService) owner(act domain.Activity) *domain.User {
	if u, ok := s.store.UserByID(act.UserID); ok {
		return &u
	}
	return nil
}
