package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const LoginMethodPassword = "password"

type User struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"size:320;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	LoginMethod  string     `gorm:"size:64;not null;default:password" json:"loginMethod"`
	Role         string     `gorm:"not null;default:user" json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastSignedIn *time.Time `json:"lastSignedIn"`
}

func (user *User) IsAdmin() bool {
	return user != nil && user.Role == RoleAdmin
}
