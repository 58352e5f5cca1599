package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tactify-cms/models"
)

type TriviaRepository interface {
	Create(trivia *models.Trivia) error
	GetByID(id int) (*models.Trivia, error)
	ListAll() ([]models.Trivia, error)
	Random(n int) ([]models.Trivia, error)
	Update(trivia *models.Trivia) error
	Delete(id uint) error
}

type triviaRepository struct {
	db *gorm.DB
}

func NewTriviaRepository(db *gorm.DB) TriviaRepository {
	return &triviaRepository{db: db}
}

func (r *triviaRepository) Create(trivia *models.Trivia) error {
	return r.db.Create(trivia).Error
}

func (r *triviaRepository) GetByID(id int) (*models.Trivia, error) {
	if id <= 0 {
		return nil, models.ErrNotFound
	}
	var trivia models.Trivia
	err := r.db.First(&trivia, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trivia, nil
}

// ListAll orders by the author-supplied date, not creation time.
func (r *triviaRepository) ListAll() ([]models.Trivia, error) {
	var trivias []models.Trivia
	err := r.db.Where("post_type = ?", models.KindTrivia).Order("date desc").Find(&trivias).Error
	return trivias, err
}

func (r *triviaRepository) Random(n int) ([]models.Trivia, error) {
	var trivias []models.Trivia
	err := r.db.Where("post_type = ?", models.KindTrivia).Order("RANDOM()").Limit(n).Find(&trivias).Error
	return trivias, err
}

func (r *triviaRepository) Update(trivia *models.Trivia) error {
	return r.db.Save(trivia).Error
}

func (r *triviaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Trivia{}, id).Error
}
