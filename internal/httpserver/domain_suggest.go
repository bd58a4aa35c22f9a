package httpserver

import (
	"context"

	suggestHTTP "search-srv/internal/suggest/delivery/http"
	suggestPostgre "search-srv/internal/suggest/repository/postgre"
	suggestUsecase "search-srv/internal/suggest/usecase"
)

func (srv *HTTPServer) setupSuggestDomain(ctx context.Context) error {
	poolRepo := suggestPostgre.New(srv.postgresDB, srv.l)

	uc := suggestUsecase.New(poolRepo, srv.normalizer, srv.l, suggestUsecase.Config{
		MaxRecentSearches: srv.config.Suggestion.MaxRecentSearches,
		DefaultLimit:      srv.config.Suggestion.DefaultLimit,
	})
	srv.suggestUC = uc

	// A failed pool load leaves that pool empty; suggestions degrade
	// instead of blocking startup.
	if err := uc.Bootstrap(ctx); err != nil {
		srv.l.Warnf(ctx, "Suggestion pool bootstrap incomplete: %v", err)
	}

	handler := suggestHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(&srv.gin.RouterGroup)

	srv.l.Infof(ctx, "Suggest domain registered")
	return nil
}
