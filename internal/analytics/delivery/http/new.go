package http

import (
	"github.com/gin-gonic/gin"

	"search-srv/internal/analytics"
	"search-srv/pkg/discord"
	"search-srv/pkg/log"
)

// Handler - Interface for the analytics HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      analytics.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc analytics.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
