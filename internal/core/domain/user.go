package domain

import "strings"

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleUser
}

// User models a registered account: identity, profile and access record.
// The password is stored and compared as plaintext; hashing is explicitly
// out of scope for this system.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	DOB      string `json:"dob"`
	Country  string `json:"country"`
	Role     string `json:"role"`

	// ManagerID references the owning Manager. Required for the User role,
	// nil otherwise. A dangling reference is tolerated, never repaired.
	ManagerID *int64 `json:"managerId,omitempty"`

	// ActivityPermissions is the committed capability matrix assigned by the
	// user's Manager. Nil means the default matrix applies.
	ActivityPermissions *Permissions `json:"activityPermissions,omitempty"`

	// ProfileImage is an opaque data-URI payload, empty when no avatar is set.
	ProfileImage string `json:"profileImage,omitempty"`
}

// EffectivePermissions returns the committed matrix, or the default matrix
// when none has been assigned.
func (u User) EffectivePermissions() Permissions {
	if u.ActivityPermissions != nil {
		return *u.ActivityPermissions
	}
	return DefaultPermissions()
}

// ManagedBy reports whether u is a User-role account on managerID's team.
func (u User) ManagedBy(managerID int64) bool {
	return u.Role == RoleUser && u.ManagerID != nil && *u.ManagerID == managerID
}

// Normalize lowercases and trims an identity field for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameIdentity reports whether two users collide on the normalized
// (fullName, email) pair.
func SameIdentity(a, b User) bool {
	return Normalize(a.FullName) == Normalize(b.FullName) &&
		Normalize(a.Email) == Normalize(b.Email)
}
