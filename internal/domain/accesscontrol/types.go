package accesscontrol

import (
	"errors"

	"gymspot/internal/domain/users"
)

// ErrAccessDenied is returned when the caller's role or ownership does not
// allow the action.
var ErrAccessDenied = errors.New("access denied")

// Principal is the authenticated caller as seen by the policy.
type Principal struct {
	UserID int64
	Role   users.Role
}

func FromUser(u *users.User) Principal {
	if u == nil {
		return Principal{}
	}
	return Principal{UserID: u.ID, Role: u.Role}
}

func (p Principal) Anonymous() bool {
	return p.UserID == 0
}
