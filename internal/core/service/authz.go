// Authorization engine: pure functions over the current session user and the
// full collections. No hidden state, no side effects; every decision the
// presentation layer renders or withholds comes from here.
package service

import (
	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// Navigable section identifiers.
const (
	SectionLogin           = "login"
	SectionRegister        = "register"
	SectionDashboard       = "dashboard"
	SectionRegisteredUsers = "registered-users"
	SectionUserActivity    = "user-activity"
	SectionUserPermissions = "user-permissions"
	SectionUserDetails     = "user-details"
	SectionMyActivity      = "my-activity"
)

// SectionsForRole returns the navigable sections for a role. Deterministic,
// total function of the role alone; an empty role means unauthenticated.
func SectionsForRole(role string) []string {
	switch role {
	case domain.RoleAdmin:
		return []string{SectionDashboard, SectionRegisteredUsers, SectionUserActivity}
	case domain.RoleManager:
		return []string{SectionDashboard, SectionRegisteredUsers, SectionUserActivity, SectionUserPermissions}
	case domain.RoleUser:
		return []string{SectionDashboard, SectionUserDetails, SectionMyActivity}
	default:
		return []string{SectionLogin, SectionRegister}
	}
}

// VisibleUsers returns the subset of all users the current user may see:
// Admin sees everyone, a Manager sees the User-role accounts on their team,
// a User sees themselves plus teammates sharing the same manager. Visibility
// within a team is symmetric. A nil current user sees nothing.
func VisibleUsers(current *domain.User, all []domain.User) []domain.User {
	if current == nil {
		return nil
	}
	switch current.Role {
	case domain.RoleAdmin:
		out := make([]domain.User, len(all))
		copy(out, all)
		return out
	case domain.RoleManager:
		var out []domain.User
		for _, u := range all {
			if u.ManagedBy(current.ID) {
				out = append(out, u)
			}
		}
		return out
	case domain.RoleUser:
		var out []domain.User
		for _, u := range all {
			if u.ID == current.ID {
				out = append(out, u)
				continue
			}
			if u.Role == domain.RoleUser &&
				u.ManagerID != nil && current.ManagerID != nil &&
				*u.ManagerID == *current.ManagerID {
				out = append(out, u)
			}
		}
		return out
	}
	return nil
}

// TeamSize counts the users reporting to managerID.
func TeamSize(all []domain.User, managerID int64) int {
	n := 0
	for _, u := range all {
		if u.ManagerID != nil && *u.ManagerID == managerID {
			n++
		}
	}
	return n
}

// ManagersWithTeamSize returns every Manager with their computed team size,
// for the Managers tab shown to Admins and Managers.
func ManagersWithTeamSize(all []domain.User) []ports.ManagerSummary {
	var out []ports.ManagerSummary
	for _, u := range all {
		if u.Role == domain.RoleManager {
			out = append(out, ports.ManagerSummary{User: u, TeamSize: TeamSize(all, u.ID)})
		}
	}
	return out
}

// UsersForScope filters the User-role accounts by a manager scope: all,
// one manager's team, or unassigned (no manager reference at all).
func UsersForScope(all []domain.User, scope ports.ManagerScope) []domain.User {
	var out []domain.User
	for _, u := range all {
		if u.Role != domain.RoleUser {
			continue
		}
		switch {
		case scope.All:
			out = append(out, u)
		case scope.Unassigned:
			if u.ManagerID == nil {
				out = append(out, u)
			}
		default:
			if u.ManagerID != nil && *u.ManagerID == scope.ManagerID {
				out = append(out, u)
			}
		}
	}
	return out
}

// CanEditUser reports whether actor may edit target's record: Admin always,
// a Manager only for User-role accounts on their own team.
func CanEditUser(actor, target domain.User) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.Role == domain.RoleManager && target.ManagedBy(actor.ID)
}

// CanDeleteUser reports whether actor may delete user records. Admin only,
// regardless of target.
func CanDeleteUser(actor domain.User) bool {
	return actor.Role == domain.RoleAdmin
}

// CanAddActivity reports whether actor may create journal entries. Only
// User-role accounts own activities, and only with the add grant.
func CanAddActivity(actor domain.User) bool {
	return actor.Role == domain.RoleUser && actor.EffectivePermissions().Add
}

// CanEditActivity reports whether actor may edit act. The owner needs the
// edit grant; Admin may edit any activity; a Manager only those owned by
// their team. owner is nil when the owning user no longer exists.
func CanEditActivity(actor domain.User, act domain.Activity, owner *domain.User) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleManager:
		return owner != nil && owner.ManagedBy(actor.ID)
	case domain.RoleUser:
		return act.UserID == actor.ID && actor.EffectivePermissions().Edit
	}
	return false
}

// CanDeleteActivity mirrors CanEditActivity with the delete grant for owners.
func CanDeleteActivity(actor domain.User, act domain.Activity, owner *domain.User) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleManager:
		return owner != nil && owner.ManagedBy(actor.ID)
	case domain.RoleUser:
		return act.UserID == actor.ID && actor.EffectivePermissions().Delete
	}
	return false
}

// VisibleActivities filters activities for the current user. A User sees
// only their own entries. Admins and Managers see entries scoped by the
// manager selector (a Manager's scope is always pinned to their own team),
// optionally narrowed to one user and one exact date.
func VisibleActivities(current domain.User, users []domain.User, activities []domain.Activity, in ports.BrowseActivitiesInput) []domain.Activity {
	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	scope := in.Scope
	if current.Role == domain.RoleManager {
		scope = ports.ManagerScope{ManagerID: current.ID}
	}

	var out []domain.Activity
	for _, a := range activities {
		if current.Role == domain.RoleUser {
			if a.UserID == current.ID {
				out = append(out, a)
			}
			continue
		}
		if in.Date != "" && a.Date != in.Date {
			continue
		}
		if in.UserID != 0 && a.UserID != in.UserID {
			continue
		}
		owner, ok := byID[a.UserID]
		switch {
		case scope.All:
			out = append(out, a)
		case scope.Unassigned:
			if ok && owner.ManagerID == nil {
				out = append(out, a)
			}
		default:
			if ok && owner.ManagerID != nil && *owner.ManagerID == scope.ManagerID {
				out = append(out, a)
			}
		}
	}
	return out
}
