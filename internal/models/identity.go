package models

// Identity is the acting user of a request as established by the auth middleware.
// An empty UserID means the caller is anonymous.
type Identity struct {
	UserID  ID
	IsAdmin bool
}

// IsAnonymous reports whether no user is authenticated
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// CanActAs reports whether the identity may act on resources owned by owner
func (i Identity) CanActAs(owner ID) bool {
	if i.IsAdmin {
		return true
	}
	return !i.IsAnonymous() && i.UserID == owner
}
