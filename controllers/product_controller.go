package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/geneeuchoi/MySelectShop/middleware"
	"github.com/geneeuchoi/MySelectShop/services"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
	searchService  *services.SearchService
}

func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
		searchService:  services.NewSearchService(),
	}
}

type CreateProductInput struct {
	Title  string `json:"title" binding:"required"`
	Link   string `json:"link" binding:"required"`
	Image  string `json:"image" binding:"required"`
	Lprice int    `json:"lprice" binding:"required,gt=0"`
}

type UpdateMyPriceInput struct {
	MyPrice int `json:"myprice" binding:"required"`
}

var sortableColumns = map[string]bool{
	"id":         true,
	"title":      true,
	"lprice":     true,
	"my_price":   true,
	"created_at": true,
}

// parsePageQuery reads page/size/sortBy/isAsc. The wire page is 1-indexed,
// the services are 0-indexed.
func parsePageQuery(c *gin.Context) (page, size int, sortBy string, isAsc bool, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, "", false, errors.New("invalid page")
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 100 {
		return 0, 0, "", false, errors.New("invalid size")
	}
	sortBy = c.DefaultQuery("sortBy", "id")
	if !sortableColumns[sortBy] {
		return 0, 0, "", false, errors.New("unsupported sort field")
	}
	isAsc = c.DefaultQuery("isAsc", "false") == "true"
	return page - 1, size, sortBy, isAsc, nil
}

func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middleware.CurrentUser(c)
	product, err := ctrl.productService.CreateProduct(services.CreateProductInput{
		Title:  input.Title,
		Link:   input.Link,
		Image:  input.Image,
		Lprice: input.Lprice,
	}, user)
	if err != nil {
		log.Printf("CreateProduct error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, size, sortBy, isAsc, err := parsePageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middleware.CurrentUser(c)
	result, err := ctrl.productService.GetProducts(user, page, size, sortBy, isAsc)
	if err != nil {
		log.Printf("GetProducts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *ProductController) GetProductById(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	product, err := ctrl.productService.GetProduct(uint(id))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (ctrl *ProductController) UpdateMyPrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	var input UpdateMyPriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middleware.CurrentUser(c)
	product, err := ctrl.productService.UpdateMyPrice(uint(id), input.MyPrice, user)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Printf("UpdateMyPrice error: %v", err)
			c.JSON(status, gin.H{"error": "failed to update price"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// RefreshProduct looks the product up on the external search API by its
// title and applies the first returned snapshot. Target price and owner are
// left alone.
func (ctrl *ProductController) RefreshProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	product, err := ctrl.productService.GetProduct(uint(id))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	items, err := ctrl.searchService.Search(c.Request.Context(), product.Title)
	if err != nil {
		log.Printf("RefreshProduct: search error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "search lookup failed"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no search result for product"})
		return
	}

	updated, err := ctrl.productService.ApplySearchUpdate(uint(id), items[0])
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": updated})
}
