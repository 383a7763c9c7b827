package domain

import "time"

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
