package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dmaia/taskboard/internal/handlers"
)

func registerCommentRoutes(r *gin.RouterGroup, commentHandler *handlers.CommentHandler) {
	comments := r.Group("/comment")
	{
		comments.POST("/create", commentHandler.Create)
		comments.GET("/task/:taskId", commentHandler.ListByTask)
		comments.DELETE("/:id", commentHandler.Delete)
	}
}
