package routes

import (
	"github.com/geneeuchoi/MySelectShop/controllers"
	"github.com/geneeuchoi/MySelectShop/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	productController := controllers.NewProductController()
	folderController := controllers.NewFolderController()
	searchController := controllers.NewSearchController()
	userController := controllers.NewUserController()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// External search
			protected.GET("/search", searchController.Search)

			// Product routes
			protected.POST("/products", productController.CreateProduct)
			protected.GET("/products", productController.GetProducts)
			protected.GET("/products/:id", productController.GetProductById)
			protected.PUT("/products/:id", productController.UpdateMyPrice)
			protected.POST("/products/:id/refresh", productController.RefreshProduct)
			protected.POST("/products/:id/folders/:folderId", folderController.AddProductToFolder)

			// Folder routes
			protected.POST("/folders", folderController.CreateFolders)
			protected.GET("/folders", folderController.GetFolders)
			protected.GET("/folders/:id/products", folderController.GetProductsInFolder)

			// Admin routes
			protected.GET("/users", middleware.AdminOnly(), userController.GetAllUsers)
		}
	}
}
