package auth

import (
	"net/http"

	"taskhub/dto"
	"taskhub/result"
	"taskhub/services"
	"taskhub/store"

	"github.com/gin-gonic/gin"
)

func SignUpController(router *gin.Engine, s store.Store) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, s)
	})
}

func Signup(c *gin.Context, s store.Store) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := services.SignUp(c.Request.Context(), s, request)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}
