package task

import (
	"net/http"

	"taskhub/dto"
	"taskhub/middleware"
	"taskhub/model"
	"taskhub/result"
	"taskhub/services"
	"taskhub/store"

	"github.com/gin-gonic/gin"
)

func TaskController(router *gin.Engine, s store.Store) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, s)
		})
		routes.GET("", func(c *gin.Context) {
			GetTasks(c, s)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTaskByID(c, s)
		})
		routes.PATCH("/:id/status", func(c *gin.Context) {
			UpdateTaskStatus(c, s)
		})
		routes.PATCH("/:id/resolver", func(c *gin.Context) {
			UpdateTaskResolver(c, s)
		})
		routes.PATCH("/:id/project", func(c *gin.Context) {
			UpdateTaskProject(c, s)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, s)
		})
	}
}

func CreateTask(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	r := services.CreateTask(c.Request.Context(), s, request, userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusCreated, r.Data)
}

func GetTasks(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var filter dto.GetTasksFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	r := services.GetTasks(c.Request.Context(), s, filter, userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}

func GetTaskByID(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)

	r := services.GetTaskByID(c.Request.Context(), s, c.Param("id"), userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}

func UpdateTaskStatus(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var request dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	r := services.UpdateTaskStatus(c.Request.Context(), s, c.Param("id"), model.TaskStatus(request.Status), userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}

func UpdateTaskResolver(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var request dto.UpdateTaskResolverRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	r := services.UpdateTaskResolver(c.Request.Context(), s, c.Param("id"), request.ResolverUserID, userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}

func UpdateTaskProject(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)
	var request dto.UpdateTaskProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	r := services.UpdateTaskProject(c.Request.Context(), s, c.Param("id"), request.ProjectID, userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, r.Data)
}

func DeleteTask(c *gin.Context, s store.Store) {
	userId := c.MustGet("userId").(string)

	r := services.DeleteTask(c.Request.Context(), s, c.Param("id"), userId)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
