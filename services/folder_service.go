package services

import (
	"errors"

	"github.com/geneeuchoi/MySelectShop/config"
	"github.com/geneeuchoi/MySelectShop/models"
	"gorm.io/gorm"
)

type FolderService struct{}

func NewFolderService() *FolderService {
	return &FolderService{}
}

// AddProductToFolder files a product under a folder for its owner. Checks
// run in order so the caller always gets the most specific failure: the
// product must exist, then the folder, then the caller must own both, then
// the pair must not already be filed. The duplicate lookup is only an early
// exit; the unique index on (product_id, folder_id) is the authority, and a
// concurrent duplicate insert comes back as ErrDuplicateFolder too.
func (s *FolderService) AddProductToFolder(productID, folderID uint, user *models.User) error {
	return config.GetDB().Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		var folder models.Folder
		if err := tx.First(&folder, folderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFolderNotFound
			}
			return err
		}

		if product.UserID != user.ID || folder.UserID != user.ID {
			return ErrNotOwner
		}

		var existing models.ProductFolder
		err := tx.Where("product_id = ? AND folder_id = ?", productID, folderID).First(&existing).Error
		if err == nil {
			return ErrDuplicateFolder
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.ProductFolder{ProductID: productID, FolderID: folderID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateFolder
			}
			return err
		}
		return nil
	})
}

// CreateFolders creates one folder per name for the caller. A name the
// caller already uses rejects the whole batch.
func (s *FolderService) CreateFolders(names []string, user *models.User) ([]models.Folder, error) {
	var folders []models.Folder
	err := config.GetDB().Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Folder{}).
			Where("user_id = ? AND name IN ?", user.ID, names).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateFolderName
		}
		for _, name := range names {
			folders = append(folders, models.Folder{Name: name, UserID: user.ID})
		}
		if err := tx.Create(&folders).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateFolderName
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (s *FolderService) GetFolders(user *models.User) ([]models.Folder, error) {
	var folders []models.Folder
	if err := config.GetDB().Where("user_id = ?", user.ID).Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}
