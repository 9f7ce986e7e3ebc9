package auth

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the domain entity. Password always holds the bcrypt hash.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
