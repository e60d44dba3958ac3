package model

import "time"

// Role is the authorization tier assigned to a user.
type Role string

const (
	// RoleAdmin grants access to catalog management mutations.
	RoleAdmin Role = "Admin"
	// RoleUser is the default tier for signed-up customers.
	RoleUser Role = "User"
)

// User represents a registered account in the shop.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string    `json:"username" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;default:'User'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
