package config

import (
	"log"
	"os"

	"github.com/geneeuchoi/MySelectShop/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "selectshop.db"
	}
	var err error
	// TranslateError turns the sqlite unique-index violation on
	// (product_id, folder_id) into gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database", err)
	}
	if err := DB.AutoMigrate(&models.User{}, &models.Product{}, &models.Folder{}, &models.ProductFolder{}); err != nil {
		log.Fatal("failed to migrate database schema", err)
	}
	log.Println("Database connection establish and migrated successfully")
}

func GetDB() *gorm.DB {
	return DB
}
