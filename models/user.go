package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:64;not null"`
	Username     string    `json:"username" gorm:"size:32"`
	RoleID       uint      `json:"role_id"`
	Role         Role      `json:"role" gorm:"foreignKey:RoleID"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	Confirmed    bool      `json:"confirmed"`
	Active       bool      `json:"active"`
	Posts        []Post    `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetPassword stores a bcrypt hash; the plaintext is never persisted.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
