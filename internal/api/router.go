package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/app"
	iauth "github.com/dmaia/taskboard/internal/auth"
	"github.com/dmaia/taskboard/internal/handlers"
	"github.com/dmaia/taskboard/internal/middleware"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
// Everything except /auth, /health and /metrics requires a valid token.
func NewRouter(db *gorm.DB, jwt *iauth.JWTService, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Public endpoints
	r.GET("/health", handlers.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler, err := handlers.NewAuthHandler(db, jwt)
	if err != nil {
		return nil, err
	}
	registerAuthRoutes(r, authHandler)

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.Auth(jwt))

	userHandler, err := handlers.NewUserHandler(db)
	if err != nil {
		return nil, err
	}
	registerUserRoutes(protected, userHandler)

	teamHandler, err := handlers.NewTeamHandler(db)
	if err != nil {
		return nil, err
	}
	registerTeamRoutes(protected, teamHandler)

	memberHandler, err := handlers.NewMemberHandler(db)
	if err != nil {
		return nil, err
	}
	registerMemberRoutes(protected, memberHandler)

	projectHandler, err := handlers.NewProjectHandler(db)
	if err != nil {
		return nil, err
	}
	registerProjectRoutes(protected, projectHandler)

	taskHandler, err := handlers.NewTaskHandler(db)
	if err != nil {
		return nil, err
	}
	registerTaskRoutes(protected, taskHandler)

	commentHandler, err := handlers.NewCommentHandler(db)
	if err != nil {
		return nil, err
	}
	registerCommentRoutes(protected, commentHandler)

	// NotFound fallback
	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
