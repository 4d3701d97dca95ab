package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dmaia/taskboard/internal/handlers"
)

func registerTeamRoutes(r *gin.RouterGroup, teamHandler *handlers.TeamHandler) {
	teams := r.Group("/team")
	{
		teams.POST("/create", teamHandler.Create)
		teams.GET("/all", teamHandler.List)
		teams.GET("/:id", teamHandler.Get)
		teams.PUT("/:id", teamHandler.Update)
		teams.DELETE("/:id", teamHandler.Delete)
	}
}
