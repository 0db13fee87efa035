package models

import (
	"time"

	"virtualoffice-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a login account. Admin staff carry role 'admin'; portal accounts
// carry role 'user' and point at the customer they belong to.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`

	Role       string     `gorm:"type:varchar(20);not null" json:"role"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customerId"`
	Disabled   bool       `gorm:"default:false" json:"disabled"`

	LastLogin *time.Time `json:"lastLogin"`

	gorm.Model
}

// BeforeCreate initializes the UUID and hashes the plaintext password.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
