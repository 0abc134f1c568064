package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geneeuchoi/MySelectShop/config"
	"github.com/geneeuchoi/MySelectShop/models"
	"github.com/geneeuchoi/MySelectShop/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the real routes against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Folder{}, &models.ProductFolder{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	config.DB = db

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

// makeRequest drives the router directly and decodes the JSON response.
func makeRequest(router *gin.Engine, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, url, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return w, response
}

func registerUser(t *testing.T, router *gin.Engine, username, adminToken string) string {
	t.Helper()
	payload := map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}
	if adminToken != "" {
		payload["adminToken"] = adminToken
	}
	w, response := makeRequest(router, "POST", "/api/v1/auth/register", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, response["token"])
	return response["token"].(string)
}

func createProduct(t *testing.T, router *gin.Engine, token, title string) uint {
	t.Helper()
	w, response := makeRequest(router, "POST", "/api/v1/products", map[string]interface{}{
		"title":  title,
		"link":   "https://shop.example.com/" + title,
		"image":  "https://shop.example.com/" + title + ".png",
		"lprice": 25000,
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	product := response["product"].(map[string]interface{})
	return uint(product["ID"].(float64))
}

func createFolder(t *testing.T, router *gin.Engine, token, name string) uint {
	t.Helper()
	w, response := makeRequest(router, "POST", "/api/v1/folders", map[string]interface{}{
		"folderNames": []string{name},
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	folders := response["folders"].([]interface{})
	folder := folders[0].(map[string]interface{})
	return uint(folder["ID"].(float64))
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupRouter(t)

	token := registerUser(t, router, "shopper", "")
	assert.NotEmpty(t, token)

	w, response := makeRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"username": "shopper",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, response["token"])

	w, _ = makeRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"username": "shopper",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router := setupRouter(t)

	w, _ := makeRequest(router, "GET", "/api/v1/products", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = makeRequest(router, "GET", "/api/v1/products", nil, "invalid-token-here")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateMyPriceFlow(t *testing.T) {
	router := setupRouter(t)
	token := registerUser(t, router, "shopper", "")
	productID := createProduct(t, router, token, "laptop")

	// below the minimum target price
	w, _ := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/products/%d", productID), map[string]interface{}{
		"myprice": 50,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, response := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/products/%d", productID), map[string]interface{}{
		"myprice": 150,
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	product := response["product"].(map[string]interface{})
	assert.EqualValues(t, 150, product["myprice"])

	// nonexistent product
	w, _ = makeRequest(router, "PUT", "/api/v1/products/9999", map[string]interface{}{
		"myprice": 150,
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProductsIsRoleScoped(t *testing.T) {
	router := setupRouter(t)
	t.Setenv("ADMIN_TOKEN", "admin-signup-key")

	u1Token := registerUser(t, router, "u1", "")
	u2Token := registerUser(t, router, "u2", "")
	adminToken := registerUser(t, router, "boss", "admin-signup-key")
	createProduct(t, router, u1Token, "keyboard")
	createProduct(t, router, u2Token, "monitor")

	w, response := makeRequest(router, "GET", "/api/v1/products?page=1&size=10&sortBy=id&isAsc=true", nil, u1Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, response["total_elements"])

	w, response = makeRequest(router, "GET", "/api/v1/products", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, response["total_elements"])

	// unrecognized sort field is a client error
	w, _ = makeRequest(router, "GET", "/api/v1/products?sortBy=password", nil, u1Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFolderAssociationFlow(t *testing.T) {
	router := setupRouter(t)
	u1Token := registerUser(t, router, "u1", "")
	u2Token := registerUser(t, router, "u2", "")
	productID := createProduct(t, router, u1Token, "laptop")
	folderID := createFolder(t, router, u1Token, "wishlist")
	u2FolderID := createFolder(t, router, u2Token, "gifts")

	url := fmt.Sprintf("/api/v1/products/%d/folders/%d", productID, folderID)
	w, _ := makeRequest(router, "POST", url, nil, u1Token)
	assert.Equal(t, http.StatusCreated, w.Code)

	// same pair again conflicts
	w, _ = makeRequest(router, "POST", url, nil, u1Token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// filing into another user's folder is forbidden
	w, _ = makeRequest(router, "POST", fmt.Sprintf("/api/v1/products/%d/folders/%d", productID, u2FolderID), nil, u1Token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// nonexistent folder reported before ownership
	w, _ = makeRequest(router, "POST", fmt.Sprintf("/api/v1/products/%d/folders/9999", productID), nil, u1Token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// folder listing shows the filed product
	w, response := makeRequest(router, "GET", fmt.Sprintf("/api/v1/folders/%d/products", folderID), nil, u1Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, response["total_elements"])
}

func TestRefreshProductFromSearch(t *testing.T) {
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"title":"laptop pro","link":"https://shop.example.com/laptop-pro","image":"https://shop.example.com/laptop-pro.png","lprice":"19900"}]}`)
	}))
	defer search.Close()
	t.Setenv("SEARCH_API_URL", search.URL)

	router := setupRouter(t)
	token := registerUser(t, router, "shopper", "")
	productID := createProduct(t, router, token, "laptop")

	w, response := makeRequest(router, "POST", fmt.Sprintf("/api/v1/products/%d/refresh", productID), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	product := response["product"].(map[string]interface{})
	assert.Equal(t, "laptop pro", product["title"])
	assert.EqualValues(t, 19900, product["lprice"])
	// the user's target price survives the refresh
	assert.EqualValues(t, models.MinMyPrice, product["myprice"])
}

func TestAdminOnlyUserListing(t *testing.T) {
	router := setupRouter(t)
	t.Setenv("ADMIN_TOKEN", "admin-signup-key")
	userToken := registerUser(t, router, "u1", "")
	adminToken := registerUser(t, router, "boss", "admin-signup-key")

	w, _ := makeRequest(router, "GET", "/api/v1/users", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, response := makeRequest(router, "GET", "/api/v1/users", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	users := response["users"].([]interface{})
	assert.Len(t, users, 2)
}
