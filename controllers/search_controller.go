package controllers

import (
	"log"
	"net/http"

	"github.com/geneeuchoi/MySelectShop/services"
	"github.com/gin-gonic/gin"
)

type SearchController struct {
	searchService *services.SearchService
}

func NewSearchController() *SearchController {
	return &SearchController{
		searchService: services.NewSearchService(),
	}
}

// Search proxies a product query to the external shopping-search API so a
// client can pick an item to track.
func (ctrl *SearchController) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	items, err := ctrl.searchService.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("Search error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "search lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
