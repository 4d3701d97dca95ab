package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dmaia/taskboard/internal/handlers"
)

func registerMemberRoutes(r *gin.RouterGroup, memberHandler *handlers.MemberHandler) {
	members := r.Group("/member")
	{
		members.POST("/add", memberHandler.Add)
		members.GET("/:teamId", memberHandler.ListByTeam)
		members.PUT("/update-role", memberHandler.UpdateRole)
		members.DELETE("/remove", memberHandler.Remove)
	}
}
