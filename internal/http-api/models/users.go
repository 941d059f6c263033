package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username     string    `gorm:"not null" json:"username"` // unique on lower(username), see database.Migrate
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	PasswordSalt string    `gorm:"column:password_salt;not null" json:"-"`
	IsAdmin      bool      `gorm:"column:is_admin;not null" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
