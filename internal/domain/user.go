package domain

import "time"

// Role controls access to owner-only routes.
type Role string

const (
	RoleOwner Role = "OWNER"
	RoleStaff Role = "STAFF"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleStaff
}

// User is the credential record for an operator of the admin backend.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the request-scoped caller derived from credentials or a
// verified token. It is never persisted and never carries the password
// hash.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IdentityOf builds the identity projection of a user record.
func IdentityOf(u *User) Identity {
	return Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}
