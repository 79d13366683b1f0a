package model

import (
	"time"

	"github.com/google/uuid"
)

// Role determines the access scope of a user
type Role string

const (
	RoleSeller  Role = "seller"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the three known roles
func (r Role) Valid() bool {
	switch r {
	case RoleSeller, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User represents an operator of the system.
//
// The password is stored as plain text and the caller identity is trusted
// from the X-User-ID header. A production deployment needs credential
// hashing and signed session tokens.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role     Role   `gorm:"type:varchar(20);not null;default:'seller'" json:"role" validate:"required,oneof=seller manager admin"`

	// Optional branch assignment. Managers and sellers without a store have
	// an empty scope and cannot write.
	StoreID *uuid.UUID `gorm:"type:uuid;index" json:"store_id"`
	Store   *Store     `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

// CheckPassword compares the stored plain-text password
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

// UserResponse is used for API responses (never carries the password)
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	StoreID   *uuid.UUID `json:"store_id,omitempty"`
	Store     *Store     `json:"store,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		StoreID:   u.StoreID,
		Store:     u.Store,
		CreatedAt: u.CreatedAt,
	}
}
