package entity

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Name      string    `db:"name"`
	Role      UserRole  `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// SessionUser is the identity attached to an authenticated request.
type SessionUser struct {
	ID    string
	Email string
	Name  string
	Role  UserRole
}

func (u SessionUser) IsAnonymous() bool {
	return u.ID == ""
}
