package httpserver

import (
	"context"

	analyticsHTTP "search-srv/internal/analytics/delivery/http"
	analyticsProducer "search-srv/internal/analytics/delivery/kafka/producer"
	analyticsPostgre "search-srv/internal/analytics/repository/postgre"
	analyticsUsecase "search-srv/internal/analytics/usecase"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context) error {
	eventRepo := analyticsPostgre.New(srv.postgresDB, srv.l)
	producer := analyticsProducer.New(srv.l, srv.kafkaProducer)

	uc := analyticsUsecase.New(eventRepo, producer, srv.l)
	srv.analyticsUC = uc

	handler := analyticsHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(&srv.gin.RouterGroup)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
