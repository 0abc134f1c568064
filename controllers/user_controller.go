package controllers

import (
	"log"
	"net/http"

	"github.com/geneeuchoi/MySelectShop/config"
	"github.com/geneeuchoi/MySelectShop/models"
	"github.com/gin-gonic/gin"
)

type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

// GetAllUsers lists registered users with optional search. Admin only,
// enforced by the route middleware.
func (uc *UserController) GetAllUsers(c *gin.Context) {
	searchQuery := c.Query("search")

	var users []models.User
	query := config.GetDB().Model(&models.User{})
	if searchQuery != "" {
		query = query.Where("username LIKE ? OR email LIKE ?", "%"+searchQuery+"%", "%"+searchQuery+"%")
	}

	if err := query.Select("id", "username", "email", "role", "created_at", "updated_at").Find(&users).Error; err != nil {
		log.Printf("GetAllUsers error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
