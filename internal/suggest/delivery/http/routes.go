package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.GET("/suggestions", h.Suggest)
	}
}
