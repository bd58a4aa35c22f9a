package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1/analytics")
	{
		api.POST("/suggestion-click", h.TrackSuggestionClick)
		api.GET("/popular", h.GetPopularSearches)
		api.GET("/statistics", h.GetStatistics)
	}
}
