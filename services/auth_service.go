package services

import (
	"errors"
	"os"

	"github.com/geneeuchoi/MySelectShop/config"
	"github.com/geneeuchoi/MySelectShop/models"
	"github.com/geneeuchoi/MySelectShop/utils"
)

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Register creates a user and issues a token. The ADMIN role is granted
// only when the supplied admin token matches the ADMIN_TOKEN environment
// variable; anything else registers a plain USER.
func (s *AuthService) Register(username, email, password, adminToken string) (*models.User, string, error) {
	var existingUser models.User
	if err := config.GetDB().Where("username = ? OR email = ?", username, email).First(&existingUser).Error; err == nil {
		return nil, "", errors.New("user already exists")
	}

	role := models.RoleUser
	if adminToken != "" {
		if adminToken != os.Getenv("ADMIN_TOKEN") {
			return nil, "", errors.New("invalid admin token")
		}
		role = models.RoleAdmin
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := user.HashPassword(); err != nil {
		return nil, "", errors.New("failed to hash password")
	}
	if err := config.GetDB().Create(&user).Error; err != nil {
		return nil, "", errors.New("failed to create user")
	}
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", errors.New("failed to generate token")
	}
	return user, token, nil
}

func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	var user models.User
	if err := config.GetDB().Where("username = ?", username).First(&user).Error; err != nil {
		return nil, "", errors.New("invalid credentials")
	}
	if !user.CheckPassword(password) {
		return nil, "", errors.New("invalid credentials")
	}
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", errors.New("failed to generate token")
	}
	return &user, token, nil
}
