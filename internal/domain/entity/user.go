package entity

import (
	"time"
)

const (
	RoleAdmin  = "Admin"
	RoleSeller = "Seller"
	RoleBuyer  = "Buyer"
)

type User struct {
	Email    string `json:"email" firestore:"email"`
	Name     string `json:"name" firestore:"name"`
	Role     string `json:"role" firestore:"role"`
	Verified bool   `json:"verified" firestore:"verified"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

func (u *User) IsBuyer() bool {
	return u.Role == RoleBuyer
}
