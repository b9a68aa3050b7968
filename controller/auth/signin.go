package auth

import (
	"net/http"

	"taskhub/dto"
	"taskhub/result"
	"taskhub/services"
	"taskhub/store"

	"github.com/gin-gonic/gin"
)

func SignInController(router *gin.Engine, s store.Store) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, s)
	})
}

func Signin(c *gin.Context, s store.Store) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := services.SignIn(c.Request.Context(), s, request)
	if r.IsError() {
		c.JSON(result.HTTPStatus(r.Error.Status), gin.H{"error": r.Error.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token":   r.Data,
	})
}
