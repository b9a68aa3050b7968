package project

import (
	"net/http"

	"taskhub/dto"
	"taskhub/middleware"
	"taskhub/result"
	"taskhub/services"
	"taskhub/store"

	"github.com/gin-gonic/gin"
)

func ProjectController(router *gin.Engine, s store.Store) {
	routes := router.Group("/projects", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateProject(c, s)
		})
		routes.GET("", func(c *gin.Context) {
			GetProjects(c, s)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetProjectByID(c, s)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteProject(c, s)
		})
		routes.POST("/:id/members", func(c *gin.Context) {
			AddMember(c, s)
		})
		routes.DELETE("/:id/members/:userId", func(c *gin.Context) {
			RemoveMember(c, s)
		})
	}
}

func CreateProject(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	r := services.CreateProject(c.Request.Context(), s, request, userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusCreated, r.Data)
}

func GetProjects(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var filter dto.GetProjectsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	r := services.GetProjects(c.Request.Context(), s, filter, userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}

func GetProjectByID(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)

	r := services.GetProjectByID(c.Request.Context(), s, c.Param("id"), userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}

func DeleteProject(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)

	r := services.DeleteProject(c.Request.Context(), s, c.Param("id"), userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func AddMember(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var request dto.AddMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	r := services.AddMember(c.Request.Context(), s, c.Param("id"), request.UserID, userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusCreated, r.Data)
}

func RemoveMember(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)

	r := services.RemoveMember(c.Request.Context(), s, c.Param("id"), c.Param("userId"), userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}
