package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dmaia/taskboard/internal/handlers"
)

func registerProjectRoutes(r *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	projects := r.Group("/project")
	{
		projects.POST("/create", projectHandler.Create)
		projects.GET("/all", projectHandler.List)
		projects.GET("/:id", projectHandler.Get)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}
}
