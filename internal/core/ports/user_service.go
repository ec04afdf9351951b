package ports

import (
	"context"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

// UserInput carries the profile fields accepted on create and update.
type UserInput struct {
	FullName     string
	Email        string
	Password     string
	Phone        string
	Gender       string
	DOB          string
	Country      string
	Role         string
	ManagerID    *int64
	ProfileImage string
}

// ManagerSummary is a Manager row with its computed team size.
type ManagerSummary struct {
	User     domain.User
	TeamSize int
}

// UserWithManager is a User row with the resolved manager name, "-" when the
// reference is absent or dangling.
type UserWithManager struct {
	User        domain.User
	ManagerName string
}

// ChangePasswordInput is the self-service password change payload.
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// UserService covers registration and the role-gated user CRUD surface.
type UserService interface {
	// Register is the public self-registration path; no actor is involved.
	Register(ctx context.Context, in UserInput) (*domain.User, error)
	// Create is the authenticated create path. Managers are coerced to
	// creating User-role accounts on their own team.
	Create(ctx context.Context, actor domain.User, in UserInput) (*domain.User, error)
	Update(ctx context.Context, actor domain.User, id int64, in UserInput) (*domain.User, error)
	// Delete removes a user. Admin only; the user's activities are left in
	// place, attributed to an unresolvable owner.
	Delete(ctx context.Context, actor domain.User, id int64) error

	// Visible returns the users the actor may see, per the visibility rules.
	Visible(actor domain.User) []domain.User
	// Managers lists all Manager accounts with team sizes.
	Managers(actor domain.User) ([]ManagerSummary, error)
	// ManagerOptions lists Manager accounts for the registration form, no
	// actor required.
	ManagerOptions() []domain.User
	// UsersTab lists User-role accounts for the admin Users tab, filtered by
	// the manager scope, with resolved manager names.
	UsersTab(actor domain.User, scope ManagerScope) ([]UserWithManager, error)

	ChangePassword(ctx context.Context, actor domain.User, in ChangePasswordInput) (*domain.User, error)
	SetProfileImage(ctx context.Context, actor domain.User, dataURI string) (*domain.User, error)
}
