package httpserver

import (
	"context"

	"search-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Domain order matters: search depends on suggest and analytics.
	if err := srv.setupSuggestDomain(ctx); err != nil {
		return err
	}
	if err := srv.setupAnalyticsDomain(ctx); err != nil {
		return err
	}
	if err := srv.setupSearchDomain(ctx); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l, srv.discord)
	srv.gin.Use(mw.Recovery())

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(mw.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
