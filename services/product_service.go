package services

import (
	"errors"

	"github.com/geneeuchoi/MySelectShop/config"
	"github.com/geneeuchoi/MySelectShop/models"
	"gorm.io/gorm"
)

type ProductService struct{}

func NewProductService() *ProductService {
	return &ProductService{}
}

type CreateProductInput struct {
	Title  string
	Link   string
	Image  string
	Lprice int
}

// ProductPage is one page of a product listing, with the totals a client
// needs to render pagination. Page is zero-indexed.
type ProductPage struct {
	Content       []models.Product `json:"content"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	TotalElements int64            `json:"total_elements"`
	TotalPages    int              `json:"total_pages"`
}

func (s *ProductService) CreateProduct(input CreateProductInput, user *models.User) (*models.Product, error) {
	product := models.Product{
		Title:   input.Title,
		Link:    input.Link,
		Image:   input.Image,
		Lprice:  input.Lprice,
		MyPrice: models.MinMyPrice,
		UserID:  user.ID,
	}
	if err := config.GetDB().Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := config.GetDB().First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// UpdateMyPrice sets the user's target price for a product. The price rule
// is checked before anything is read, so a rejected call leaves the store
// untouched. Only the owner or an admin may change it.
func (s *ProductService) UpdateMyPrice(id uint, myprice int, user *models.User) (*models.Product, error) {
	if myprice < models.MinMyPrice {
		return nil, ErrMyPriceTooLow
	}
	var product models.Product
	err := config.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if product.UserID != user.ID && !user.IsAdmin() {
			return ErrNotOwner
		}
		return tx.Model(&product).Update("my_price", myprice).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ApplySearchUpdate overwrites a product's descriptive fields and market
// price from a search snapshot. The owner and target price are never
// touched. Applying the same snapshot twice leaves the same stored state.
func (s *ProductService) ApplySearchUpdate(id uint, item ItemDto) (*models.Product, error) {
	var product models.Product
	err := config.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		return tx.Model(&product).Updates(map[string]interface{}{
			"title":  item.Title,
			"link":   item.Link,
			"image":  item.Image,
			"lprice": item.Lprice,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProducts returns one page of products ordered by sortBy. USER-role
// callers only see their own products; ADMIN sees every user's.
func (s *ProductService) GetProducts(user *models.User, page, size int, sortBy string, isAsc bool) (*ProductPage, error) {
	query := config.GetDB().Model(&models.Product{})
	if !user.IsAdmin() {
		query = query.Where("user_id = ?", user.ID)
	}
	return paginate(query, page, size, sortBy, isAsc)
}

// GetProductsInFolder returns one page of the caller's products filed under
// the given folder.
func (s *ProductService) GetProductsInFolder(user *models.User, folderID uint, page, size int, sortBy string, isAsc bool) (*ProductPage, error) {
	var folder models.Folder
	if err := config.GetDB().First(&folder, folderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}
	if folder.UserID != user.ID && !user.IsAdmin() {
		return nil, ErrNotOwner
	}
	query := config.GetDB().Model(&models.Product{}).
		Select("products.*").
		Joins("JOIN product_folders ON product_folders.product_id = products.id").
		Where("product_folders.folder_id = ?", folderID)
	// qualify the sort column, it would be ambiguous after the join
	return paginate(query, page, size, "products."+sortBy, isAsc)
}

func paginate(query *gorm.DB, page, size int, sortBy string, isAsc bool) (*ProductPage, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	direction := "DESC"
	if isAsc {
		direction = "ASC"
	}

	var products []models.Product
	err := query.Order(sortBy + " " + direction).
		Offset(page * size).
		Limit(size).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &ProductPage{
		Content:       products,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}
