package router

import (
	"myStyleShop/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	categories := api.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.POST("", handler.CreateCategory, authRequired, adminOnly)
	categories.PUT("/:id", handler.UpdateCategory, authRequired, adminOnly)
	categories.DELETE("/:id", handler.DeleteCategory, authRequired, adminOnly)
}

func SetupCollectionRoutes(api *echo.Group, handler *rest.CollectionHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	collections := api.Group("/collections")

	collections.GET("", handler.GetAllCollections)
	collections.GET("/:id", handler.GetCollectionByID)
	collections.POST("", handler.CreateCollection, authRequired, adminOnly)
	collections.PUT("/:id", handler.UpdateCollection, authRequired, adminOnly)
	collections.DELETE("/:id", handler.DeleteCollection, authRequired, adminOnly)
	collections.POST("/:id/products/:productID", handler.AddProduct, authRequired, adminOnly)
	collections.DELETE("/:id/products/:productID", handler.RemoveProduct, authRequired, adminOnly)
}

// The rail is public; the score-breakdown view is dashboard only.
func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, debugHandler *rest.RecommendationDebugHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/products/:id/recommendations", handler.Recommend)

	admin := api.Group("/admin", authRequired, adminOnly)
	admin.GET("/products/:id/recommendations", debugHandler.Explain)
}

func SetWishlistRoutes(api *echo.Group, handler *rest.WishlistHandler) {
	wl := api.Group("/wishlist")

	wl.POST("/start", handler.Start)
	wl.GET("", handler.List)
	wl.GET("/count", handler.Count)
	wl.POST("/items", handler.AddItem)
	wl.DELETE("/items/:productID", handler.RemoveItem)
	wl.DELETE("", handler.Clear)
}

func SetShareLinkRoutes(api *echo.Group, handler *rest.ShareLinkHandler) {
	api.POST("/products/:id/share-link", handler.Create)
	api.GET("/share/:token", handler.Resolve)
}
