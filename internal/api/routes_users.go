package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dmaia/taskboard/internal/handlers"
)

func registerUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := r.Group("/user")
	{
		users.POST("/create", userHandler.Create)
		users.GET("/all", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}
}
