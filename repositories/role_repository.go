package repositories

import (
	"errors"

	"gorm.io/gorm"

	"tactify-cms/models"
)

type RoleRepository interface {
	Seed() error
	GetByName(name string) (*models.Role, error)
	GetDefault() (*models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Seed inserts the bootstrap role set, updating masks in place if a
// role already exists. Safe to run on every boot.
func (r *roleRepository) Seed() error {
	for _, seed := range models.SeedRoles() {
		var role models.Role
		err := r.db.Where("name = ?", seed.Name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = models.Role{Name: seed.Name, Permissions: seed.Permissions, IsDefault: seed.IsDefault}
			if err := r.db.Create(&role).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		role.Permissions = seed.Permissions
		role.IsDefault = seed.IsDefault
		if err := r.db.Save(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *roleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	return &role, err
}

func (r *roleRepository) GetDefault() (*models.Role, error) {
	var role models.Role
	err := r.db.Where("is_default = ?", true).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	return &role, err
}
