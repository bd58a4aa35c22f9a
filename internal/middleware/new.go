package middleware

import (
	"search-srv/pkg/discord"
	"search-srv/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

func New(l log.Logger, discord discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		discord: discord,
	}
}
