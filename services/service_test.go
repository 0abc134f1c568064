package services

import (
	"fmt"
	"testing"

	"github.com/geneeuchoi/MySelectShop/config"
	"github.com/geneeuchoi/MySelectShop/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory database. The DSN is
// named after the test so parallel connections of one test share state
// while different tests stay isolated.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Folder{}, &models.ProductFolder{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	config.DB = db
}

func createTestUser(t *testing.T, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
		Role:     role,
	}
	assert.NoError(t, config.DB.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, owner *models.User, title string, myprice int) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:   title,
		Link:    "https://shop.example.com/" + title,
		Image:   "https://shop.example.com/" + title + ".png",
		Lprice:  15000,
		MyPrice: myprice,
		UserID:  owner.ID,
	}
	assert.NoError(t, config.DB.Create(product).Error)
	return product
}

func createTestFolder(t *testing.T, owner *models.User, name string) *models.Folder {
	t.Helper()
	folder := &models.Folder{Name: name, UserID: owner.ID}
	assert.NoError(t, config.DB.Create(folder).Error)
	return folder
}
