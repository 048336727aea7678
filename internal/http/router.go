package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "webapp-auth-backend/docs"
	"webapp-auth-backend/internal/common/middleware"
	"webapp-auth-backend/internal/config"
	"webapp-auth-backend/internal/service"
)

// NewRouter assembles the gin engine: recovery, request id, request
// logging, CORS, swagger, and the auth endpoints under /api/v1.
func NewRouter(cfg *config.Config, svc *service.AuthService) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Authorization", "Accept",
		"X-Request-ID", "X-Telegram-Init-Data", "X-Telegram-Init-Data-B64",
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	NewAuthHandler(svc).RegisterRoutes(api)

	return router
}
