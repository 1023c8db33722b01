package service

import (
	"github.com/gin-gonic/gin"
)

const BasePath = "/restapi"

func SetupRoutes(h *Handlers) *gin.Engine {
	routes := gin.Default()

	routes.GET(BasePath+"/activity/:username", h.Activity)

	cachedRoutes := routes.Group(BasePath)
	{
		cachedRoutes.Use(h.CacheUserRequest)

		cachedRoutes.GET("/books", h.GetAllBooks)
		cachedRoutes.POST("/books", h.CreateBook)
		cachedRoutes.GET("/books/:id", h.GetBookById)
		cachedRoutes.PUT("/books/:id", h.UpdateBookById)
		cachedRoutes.DELETE("/books/:id", h.DeleteBookById)
		cachedRoutes.GET("/search", h.SearchBooks)
		cachedRoutes.GET("/store", h.Store)
	}

	return routes
}
