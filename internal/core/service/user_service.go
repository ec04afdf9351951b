package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
	"github.com/Ajayhariharan/activax/internal/core/store"
	"github.com/Ajayhariharan/activax/internal/pkg/imaging"
)

// UserService implements registration and the role-gated user CRUD surface
// on top of the domain store.
type UserService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewUserService(st *store.Store, logger zerolog.Logger) *UserService {
	return &UserService{store: st, logger: logger}
}

// identityTaken checks the normalized (fullName, email) uniqueness invariant
// against every user except excludeID.
func (s *UserService) identityTaken(candidate domain.User, excludeID int64) bool {
	for _, u := range s.store.Users() {
		if u.ID != excludeID && domain.SameIdentity(u, candidate) {
			return true
		}
	}
	return false
}

func userFromInput(in ports.UserInput) domain.User {
	u := domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		Password:     in.Password,
		Phone:        in.Phone,
		Gender:       in.Gender,
		DOB:          in.DOB,
		Country:      in.Country,
		Role:         in.Role,
		ProfileImage: in.ProfileImage,
	}
	// A manager reference is only meaningful for the User role.
	if in.Role == domain.RoleUser {
		u.ManagerID = in.ManagerID
	}
	return u
}

// Register is the public self-registration path.
func (s *UserService) Register(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Role == domain.RoleUser && in.ManagerID == nil {
		return nil, domain.ErrManagerRequired
	}

	candidate := userFromInput(in)
	if s.identityTaken(candidate, 0) {
		return nil, domain.ErrUserExists
	}

	created := s.store.AddUser(ctx, candidate)
	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return &created, nil
}

// Create is the authenticated create path. An Admin may create any role; a
// Manager is coerced to creating User-role accounts on their own team.
func (s *UserService) Create(ctx context.Context, actor domain.User, in ports.UserInput) (*domain.User, error) {
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleManager:
		in.Role = domain.RoleUser
		id := actor.ID
		in.ManagerID = &id
	default:
		return nil, domain.ErrForbidden
	}
	return s.Register(ctx, in)
}

// Update edits a user record. The actor must pass CanEditUser; a Manager
// cannot move a team member off their team or change their role. The
// committed permission matrix and any avatar survive a profile edit unless
// explicitly replaced.
func (s *UserService) Update(ctx context.Context, actor domain.User, id int64, in ports.UserInput) (*domain.User, error) {
	target, ok := s.store.UserByID(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if !CanEditUser(actor, target) {
		return nil, domain.ErrForbidden
	}

	if actor.Role == domain.RoleManager {
		in.Role = domain.RoleUser
		mid := actor.ID
		in.ManagerID = &mid
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Role == domain.RoleUser && in.ManagerID == nil {
		return nil, domain.ErrManagerRequired
	}

	next := userFromInput(in)
	next.ID = target.ID
	next.ActivityPermissions = target.ActivityPermissions
	if next.ProfileImage == "" {
		next.ProfileImage = target.ProfileImage
	}
	if next.Password == "" {
		next.Password = target.Password
	}

	if s.identityTaken(next, target.ID) {
		return nil, domain.ErrUserExists
	}

	updated, err := s.store.UpdateUser(ctx, next)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", updated.ID).Msg("user updated")
	return &updated, nil
}

// Delete removes a user record. Admin only; no cascade.
func (s *UserService) Delete(ctx context.Context, actor domain.User, id int64) error {
	if !CanDeleteUser(actor) {
		return domain.ErrForbidden
	}
	if err := s.store.RemoveUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user removed")
	return nil
}

// Visible returns the users the actor may see.
func (s *UserService) Visible(actor domain.User) []domain.User {
	return VisibleUsers(&actor, s.store.Users())
}

// Managers lists every Manager with team size. Not available to User-role
// actors, whose Users view has no Managers tab.
func (s *UserService) Managers(actor domain.User) ([]ports.ManagerSummary, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}
	return ManagersWithTeamSize(s.store.Users()), nil
}

// ManagerOptions lists Manager accounts for the registration form's manager
// picker. Public by design of the registration flow.
func (s *UserService) ManagerOptions() []domain.User {
	var out []domain.User
	for _, u := range s.store.Users() {
		if u.Role == domain.RoleManager {
			out = append(out, u)
		}
	}
	return out
}

// UsersTab lists User-role accounts for the admin Users tab, filtered by
// manager scope, with resolved manager names.
func (s *UserService) UsersTab(actor domain.User, scope ports.ManagerScope) ([]ports.UserWithManager, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	all := s.store.Users()
	byID := make(map[int64]domain.User, len(all))
	for _, u := range all {
		byID[u.ID] = u
	}

	var out []ports.UserWithManager
	for _, u := range UsersForScope(all, scope) {
		name := "-"
		if u.ManagerID != nil {
			if m, ok := byID[*u.ManagerID]; ok {
				name = m.FullName
			}
		}
		out = append(out, ports.UserWithManager{User: u, ManagerName: name})
	}
	return out, nil
}

// ChangePassword is the self-service password change: the old password must
// match, the new one must differ and match its confirmation.
func (s *UserService) ChangePassword(ctx context.Context, actor domain.User, in ports.ChangePasswordInput) (*domain.User, error) {
	current, ok := s.store.UserByID(actor.ID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if in.OldPassword != current.Password {
		return nil, domain.ErrWrongPassword
	}
	if in.NewPassword == in.OldPassword {
		return nil, domain.ErrPasswordReused
	}
	if in.NewPassword == "" || in.NewPassword != in.ConfirmPassword {
		return nil, domain.ErrInvalidCredentials
	}

	current.Password = in.NewPassword
	updated, err := s.store.UpdateUser(ctx, current)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", updated.ID).Msg("password changed")
	return &updated, nil
}

// SetProfileImage stores a checked data-URI avatar on the actor's record.
func (s *UserService) SetProfileImage(ctx context.Context, actor domain.User, dataURI string) (*domain.User, error) {
	if !imaging.ValidDataURI(dataURI) {
		return nil, domain.ErrInvalidImage
	}
	current, ok := s.store.UserByID(actor.ID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	current.ProfileImage = dataURI
	updated, err := s.store.UpdateUser(ctx, current)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
