package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tactify-cms/models"
)

type SessionRepository interface {
	Create(session *models.Session) error
	GetByID(id string) (*models.Session, error)
	DeleteByID(id string) error
	DeleteByUserID(userID uint) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) GetByID(id string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByID is a no-op when the session is already gone.
func (r *sessionRepository) DeleteByID(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Session{}).Error
}

func (r *sessionRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}
