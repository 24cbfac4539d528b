package entity

import "time"

// Identity is the verified content of a session token. It lives for a single request
// and reflects the user record as it was when the token was issued.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

// HasAnyRole reports whether the identity's role is one of allowed.
func (i Identity) HasAnyRole(allowed ...Role) bool {
	return Roles(allowed).Contains(i.Role)
}

// SessionToken is a signed, self-contained credential handed to the client.
type SessionToken struct {
	Value     string
	ExpiresAt time.Time
}
