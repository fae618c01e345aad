package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest Role = "GUEST"
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsElevated is the single capability predicate for administrative
// operations. Every staff/admin check in the system goes through here.
func (r Role) IsElevated() bool {
	return r == RoleStaff || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor identifies an authenticated caller for role-scoped operations.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsElevated() bool {
	return a.Role.IsElevated()
}
