package models

import (
	"time"
)

// Permission bits are independent capabilities combined with bitwise OR.
const (
	PermissionComment          = 0x01
	PermissionWriteArticles    = 0x02
	PermissionModerateComments = 0x04
	PermissionAdminister       = 0x08
)

type Role struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:64;not null"`
	IsDefault   bool      `json:"is_default" gorm:"index"`
	Permissions int       `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SeedRole describes one entry of the bootstrap role set.
type SeedRole struct {
	Name        string
	Permissions int
	IsDefault   bool
}

// SeedRoles is the fixed bootstrap set. Exactly one role is the
// default, assigned to newly registered users.
func SeedRoles() []SeedRole {
	return []SeedRole{
		{Name: "User", Permissions: PermissionComment, IsDefault: true},
		{Name: "Moderator", Permissions: PermissionComment | PermissionWriteArticles | PermissionModerateComments},
		{Name: "Administrator", Permissions: PermissionComment | PermissionWriteArticles | PermissionModerateComments | PermissionAdminister},
	}
}
