package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dmaia/taskboard/internal/handlers"
)

func registerAuthRoutes(r *gin.Engine, authHandler *handlers.AuthHandler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}
