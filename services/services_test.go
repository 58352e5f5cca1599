package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tactify-cms/config"
	"tactify-cms/models"
	"tactify-cms/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	require.NoError(t, repositories.NewRoleRepository(db).Seed())
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, roleName, password string) *models.User {
	t.Helper()
	role, err := repositories.NewRoleRepository(db).GetByName(roleName)
	require.NoError(t, err)

	user := &models.User{
		Email:    email,
		Username: strings.Split(email, "@")[0],
		RoleID:   role.ID,
		Active:   true,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, repositories.NewUserRepository(db).Create(user))
	return user
}
