package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coverdesk/coverdesk-backend/api"
	"github.com/coverdesk/coverdesk-backend/api/middleware"
	"github.com/coverdesk/coverdesk-backend/usecases"
	"github.com/coverdesk/coverdesk-backend/utils"
)

func corsOption(env string) cors.Config {
	allowedOrigins := []string{}

	if env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:5173", "http://127.0.0.1:5173")
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodPatch,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func initRouter(ctx context.Context, conf AppConfiguration, uc usecases.Usecases) *gin.Engine {
	if conf.env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(conf.env)))
	r.Use(middleware.NewLogging(logger, "/liveness"))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	r.GET("/liveness", api.HandleLivenessProbe(uc))

	r.GET("/clients", api.HandleListClients(uc))
	r.POST("/clients", api.HandleCreateClient(uc))
	r.PATCH("/clients/:client_id", api.HandleUpdateClient(uc))
	r.GET("/clients/:client_id/audit", api.HandleClientAuditTrail(uc))

	return r
}
