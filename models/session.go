package models

import "time"

// Session is one browser login, keyed by the cookie value.
type Session struct {
	ID        string    `json:"id" gorm:"primarykey;size:36"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
