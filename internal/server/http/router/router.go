package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/usersystem/internal/server/http/handlers"
	"github.com/polkiloo/usersystem/internal/server/http/middleware"
	"github.com/polkiloo/usersystem/internal/server/http/validation"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RegistryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	validation.Init()
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	authHandler := handlers.NewAuthHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	users := engine.Group("/api/users")
	users.POST("", userHandler.Register)
	users.GET("", userHandler.Find)
	users.GET("/count", userHandler.Count)
	users.POST("/login", authHandler.Login)

	authed := users.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/me", userHandler.Me)

	return engine
}
