package ports

import (
	"context"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

// TeamPermissions is one row of a Manager's permission table: the team
// member, their committed (effective) matrix, and the in-progress draft if
// one exists.
type TeamPermissions struct {
	User      domain.User
	Committed domain.Permissions
	Draft     *domain.Permissions
}

// PermissionService owns the per-user permission drafts. A draft is scoped
// to one target user, edited with single-field toggles, and only reaches the
// user record on an explicit commit; discarding leaves the committed matrix
// intact.
type PermissionService interface {
	Team(actor domain.User) ([]TeamPermissions, error)
	// Begin opens (or returns) the draft for a team member, seeded from the
	// committed matrix.
	Begin(actor domain.User, userID int64) (domain.Permissions, error)
	// Toggle applies a single-field transition to the draft. Revoking view
	// while a dependent grant is held fails with ErrViewLocked and leaves
	// the draft unchanged.
	Toggle(actor domain.User, userID int64, field string, value bool) (domain.Permissions, error)
	// Commit persists the draft to the user record and drops it.
	Commit(ctx context.Context, actor domain.User, userID int64) (*domain.User, error)
	// Discard drops the draft, if any. Idempotent.
	Discard(actor domain.User, userID int64) error
}
