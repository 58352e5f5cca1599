package models

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// Trivia is a date-stamped entry with no file artifact. Date is
// author-supplied and drives archive ordering, distinct from CreatedAt.
type Trivia struct {
	ID        uint        `json:"id" gorm:"primarykey"`
	Date      time.Time   `json:"date" gorm:"index"`
	Header    string      `json:"header" gorm:"size:32"`
	Body      string      `json:"body" gorm:"type:text"`
	AuthorID  *uint       `json:"author_id"`
	Tags      string      `json:"tags" gorm:"size:64"`
	Kind      ContentKind `json:"post_type" gorm:"column:post_type;index"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (t *Trivia) BeforeSave(tx *gorm.DB) error {
	if utf8.RuneCountInString(t.Header) > headerMaxLen {
		return ErrHeaderLength
	}
	return nil
}

func (t Trivia) DisplayDate() string {
	return t.Date.Format("02 Jan, 2006")
}
