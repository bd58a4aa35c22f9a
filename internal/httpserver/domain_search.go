package httpserver

import (
	"context"
	"time"

	searchHTTP "search-srv/internal/search/delivery/http"
	searchPostgre "search-srv/internal/search/repository/postgre"
	searchRedis "search-srv/internal/search/repository/redis"
	searchUsecase "search-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context) error {
	productRepo := searchPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := searchRedis.New(srv.redisClient, srv.l, time.Duration(srv.config.Search.CacheTTL)*time.Second)

	uc := searchUsecase.New(productRepo, cacheRepo, srv.suggestUC, srv.analyticsUC, srv.normalizer, srv.l, searchUsecase.Config{
		DefaultPageSize: srv.config.Search.DefaultPageSize,
		MaxPageSize:     srv.config.Search.MaxPageSize,
	})

	handler := searchHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(&srv.gin.RouterGroup)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
