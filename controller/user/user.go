package user

import (
	"net/http"

	"taskhub/dto"
	"taskhub/middleware"
	"taskhub/result"
	"taskhub/services"
	"taskhub/store"

	"github.com/gin-gonic/gin"
)

func UserController(router *gin.Engine, s store.Store) {
	routes := router.Group("/users", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetUsers(c, s)
		})
	}
}

// GetUsers lists users as id/username pairs so members and resolvers can be
// picked by id. Supports ?search= on the username.
func GetUsers(c *gin.Context, s store.Store) {
	var filter dto.SearchUsersFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	r := services.GetUsers(c.Request.Context(), s, filter)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}
