package domain

// Permission field names accepted by Permissions.Apply.
const (
	PermView   = "view"
	PermAdd    = "add"
	PermEdit   = "edit"
	PermDelete = "delete"
)

// Permissions is the per-user activity capability matrix a Manager assigns
// to each member of their team.
//
// Invariant: View is true whenever any of Add, Edit or Delete is true. The
// invariant is maintained on every transition, not just at construction.
type Permissions struct {
	View   bool `json:"view"`
	Add    bool `json:"add"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// DefaultPermissions is the matrix in effect for users that have never been
// assigned one: view only.
func DefaultPermissions() Permissions {
	return Permissions{View: true}
}

// ValidPermField reports whether field names a matrix column.
func ValidPermField(field string) bool {
	switch field {
	case PermView, PermAdd, PermEdit, PermDelete:
		return true
	}
	return false
}

// Apply performs a single-field toggle and returns the next state together
// with whether the transition applied.
//
//   - View cannot be revoked while Add, Edit or Delete is granted; the
//     attempt is rejected and the matrix is returned unchanged.
//   - Granting Add, Edit or Delete forces View on in the same transition.
//   - Revoking Add, Edit or Delete has no side effects on other fields.
//
// Unknown field names are rejected.
func (p Permissions) Apply(field string, value bool) (Permissions, bool) {
	next := p
	switch field {
	case PermView:
		if !value && (p.Add || p.Edit || p.Delete) {
			return p, false
		}
		next.View = value
	case PermAdd:
		next.Add = value
	case PermEdit:
		next.Edit = value
	case PermDelete:
		next.Delete = value
	default:
		return p, false
	}
	if value && field != PermView {
		next.View = true
	}
	return next, true
}
