package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tactify-cms/models"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(kind models.ContentKind, page, pageSize int) ([]models.Post, int64, error)
	ListAll(kind models.ContentKind) ([]models.Post, error)
	Random(kind models.ContentKind, n int) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID treats negative and out-of-range ids the same way: not found.
func (r *postRepository) GetByID(id int) (*models.Post, error) {
	if id <= 0 {
		return nil, models.ErrNotFound
	}
	var post models.Post
	err := r.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(kind models.ContentKind, page, pageSize int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	query := r.db.Model(&models.Post{}).Where("post_type = ?", kind)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at desc").Offset(offset).Limit(pageSize).Find(&posts).Error
	return posts, total, err
}

func (r *postRepository) ListAll(kind models.ContentKind) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("post_type = ?", kind).Order("created_at desc").Find(&posts).Error
	return posts, err
}

// Random samples up to n rows without replacement. RANDOM() is
// understood by both postgres and sqlite.
func (r *postRepository) Random(kind models.ContentKind, n int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("post_type = ?", kind).Order("RANDOM()").Limit(n).Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
