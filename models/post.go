package models

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// ContentKind discriminates the content types sharing the posts layout.
type ContentKind int

const (
	KindBlog   ContentKind = 0x1
	KindZines  ContentKind = 0x2
	KindPoster ContentKind = 0x4
	KindTrivia ContentKind = 0x8
)

const headerMaxLen = 32

// Post is an image-backed poster entry. Doc and URL are either both
// unset (no artifact) or both set: Doc is the on-disk location the
// download URL resolves to.
type Post struct {
	ID          uint        `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Header      string      `json:"header" gorm:"size:32"`
	Body        string      `json:"body" gorm:"type:text"`
	Description string      `json:"description" gorm:"type:text"`
	AuthorID    *uint       `json:"author_id"`
	Tags        string      `json:"tags" gorm:"size:64"`
	Doc         string      `json:"doc" gorm:"size:255"`
	URL         string      `json:"url" gorm:"size:255"`
	Kind        ContentKind `json:"post_type" gorm:"column:post_type;index"`
}

// BeforeSave enforces the 32-char header cap at the storage layer.
// The edit form accepts up to 255 chars, so overlong headers surface
// here rather than being silently truncated.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	if utf8.RuneCountInString(p.Header) > headerMaxLen {
		return ErrHeaderLength
	}
	return nil
}

func (p Post) HasFile() bool {
	return p.Doc != ""
}

// DisplayDate renders the creation time as "09 Jan, 2023" for the
// browsing pages; single-digit days are zero padded so listings align.
func (p Post) DisplayDate() string {
	return p.CreatedAt.Format("02 Jan, 2006")
}
