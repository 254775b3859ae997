package models

import "time"

// User is a member of the sales team. Email uniqueness is not enforced anywhere.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Credential is a roster entry used by login. The password never leaves the auth feature.
type Credential struct {
	User
	Password string `json:"-"`
}
