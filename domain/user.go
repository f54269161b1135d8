package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Identity is derived by decoding the session credential, never stored.
type Identity struct {
	ID       string
	Email    string
	FullName string
	Role     Role
}
