package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.index)
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/documents", h.createDocument)
	}
}
