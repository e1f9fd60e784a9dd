package actor

import "errors"

var ErrNotAuthorized = errors.New("not authorized")

// Role is resolved once at the authentication edge. Handlers and usecases
// switch on it explicitly rather than probing for profile attributes.
type Role string

const (
	RoleBorrower    Role = "borrower"
	RoleLenderStaff Role = "lender_staff"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBorrower, RoleLenderStaff, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated principal performing a request.
// LenderID is set only for RoleLenderStaff.
type Actor struct {
	Role     Role
	LenderID string
}

// CanTransition reports whether the actor may move an application owned by
// ownerLenderID through its lifecycle. Only the owning lender's staff
// (or an admin) may transition state; borrowers can only create.
func (a Actor) CanTransition(ownerLenderID string) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleLenderStaff:
		return a.LenderID != "" && a.LenderID == ownerLenderID
	}
	return false
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
