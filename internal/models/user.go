package models

import "time"

// User is the authenticated teacher account backing a workspace.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	AccessToken  string `gorm:"not null"`
	RefreshToken string
	TokenType    string
	Expiry       time.Time
}
