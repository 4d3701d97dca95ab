package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dmaia/taskboard/internal/handlers"
)

func registerTaskRoutes(r *gin.RouterGroup, taskHandler *handlers.TaskHandler) {
	tasks := r.Group("/task")
	{
		tasks.POST("/create", taskHandler.Create)
		tasks.GET("/all", taskHandler.List)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	// board data source
	r.GET("/projects/:projectId/tasks", taskHandler.ListByProject)
}
