package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactify-cms/models"
)

func TestSeedInsertsRoles(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)

	require.NoError(t, repo.Seed())

	user, err := repo.GetByName("User")
	require.NoError(t, err)
	assert.Equal(t, models.PermissionComment, user.Permissions)

	moderator, err := repo.GetByName("Moderator")
	require.NoError(t, err)
	assert.Equal(t, models.PermissionComment|models.PermissionWriteArticles|models.PermissionModerateComments, moderator.Permissions)

	admin, err := repo.GetByName("Administrator")
	require.NoError(t, err)
	assert.Equal(t, models.PermissionComment|models.PermissionWriteArticles|models.PermissionModerateComments|models.PermissionAdminister, admin.Permissions)

	def, err := repo.GetDefault()
	require.NoError(t, err)
	assert.Equal(t, "User", def.Name)
}

func TestSeedIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)

	require.NoError(t, repo.Seed())
	require.NoError(t, repo.Seed())

	var count int64
	require.NoError(t, db.Model(&models.Role{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestGetByNameMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)

	_, err := repo.GetByName("Ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
