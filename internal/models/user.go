package models

import "time"

// User represents application user.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:64;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Currency     string    `gorm:"size:8;default:USD"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	LastPasswordChange *time.Time // anchor for the password rotation cooldown
	LastLoginAt        *time.Time
	LastLoginIP        string `gorm:"size:64"`
}
