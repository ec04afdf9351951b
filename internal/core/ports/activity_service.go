package ports

import (
	"context"
	"strconv"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

// ManagerScope is the optional manager filter layered onto user and activity
// listings: everything, one manager's team, or users with no manager at all.
type ManagerScope struct {
	All        bool
	Unassigned bool
	ManagerID  int64
}

// ParseManagerScope interprets the wire form: "all" (or empty),
// "unassigned", or a manager id.
func ParseManagerScope(s string) (ManagerScope, bool) {
	switch s {
	case "", "all":
		return ManagerScope{All: true}, true
	case "unassigned":
		return ManagerScope{Unassigned: true}, true
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return ManagerScope{}, false
	}
	return ManagerScope{ManagerID: id}, true
}

// BrowseActivitiesInput carries the admin/manager activity filters: manager
// scope, an optional specific user (0 means all) and an optional exact date.
type BrowseActivitiesInput struct {
	Scope  ManagerScope
	UserID int64
	Date   string
}

// ActivityService covers the journal surface for owners (my-activity) and
// for the admin/manager oversight view (user-activity).
type ActivityService interface {
	// Mine lists the actor's own activities, newest first. Requires the view
	// permission.
	Mine(actor domain.User) ([]domain.Activity, error)
	// Add creates an activity owned by the actor. The store assigns id and
	// creation instant; requires the add permission.
	Add(ctx context.Context, actor domain.User, date, text string) (*domain.Activity, error)
	// Update edits date/text of an activity the actor may edit (owner with
	// the edit permission, or Admin/Manager within visible scope).
	Update(ctx context.Context, actor domain.User, id int64, date, text string) (*domain.Activity, error)
	Remove(ctx context.Context, actor domain.User, id int64) error
	// Browse is the Admin/Manager oversight listing with layered filters.
	Browse(actor domain.User, in BrowseActivitiesInput) ([]domain.Activity, error)
}
