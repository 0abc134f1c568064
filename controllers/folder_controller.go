package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/geneeuchoi/MySelectShop/middleware"
	"github.com/geneeuchoi/MySelectShop/services"
	"github.com/gin-gonic/gin"
)

type FolderController struct {
	folderService  *services.FolderService
	productService *services.ProductService
}

func NewFolderController() *FolderController {
	return &FolderController{
		folderService:  services.NewFolderService(),
		productService: services.NewProductService(),
	}
}

type CreateFoldersInput struct {
	FolderNames []string `json:"folderNames" binding:"required,min=1,dive,required"`
}

func (ctrl *FolderController) CreateFolders(c *gin.Context) {
	var input CreateFoldersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middleware.CurrentUser(c)
	folders, err := ctrl.folderService.CreateFolders(input.FolderNames, user)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Printf("CreateFolders error: %v", err)
			c.JSON(status, gin.H{"error": "failed to create folders"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"folders": folders})
}

func (ctrl *FolderController) GetFolders(c *gin.Context) {
	user := middleware.CurrentUser(c)
	folders, err := ctrl.folderService.GetFolders(user)
	if err != nil {
		log.Printf("GetFolders error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch folders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

func (ctrl *FolderController) AddProductToFolder(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	folderID, err := strconv.ParseUint(c.Param("folderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}
	user := middleware.CurrentUser(c)
	if err := ctrl.folderService.AddProductToFolder(uint(productID), uint(folderID), user); err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Printf("AddProductToFolder error: %v", err)
			c.JSON(status, gin.H{"error": "failed to add product to folder"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "product added to folder"})
}

func (ctrl *FolderController) GetProductsInFolder(c *gin.Context) {
	folderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}
	page, size, sortBy, isAsc, err := parsePageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middleware.CurrentUser(c)
	result, err := ctrl.productService.GetProductsInFolder(user, uint(folderID), page, size, sortBy, isAsc)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Printf("GetProductsInFolder error: %v", err)
			c.JSON(status, gin.H{"error": "failed to fetch products"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
