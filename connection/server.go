package connection

import (
	"log"

	authcontroller "taskhub/controller/auth"
	projectcontroller "taskhub/controller/project"
	taskcontroller "taskhub/controller/task"
	usercontroller "taskhub/controller/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	db, err := OpenDatabase()
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	authcontroller.SignUpController(router, db)
	authcontroller.SignInController(router, db)
	usercontroller.UserController(router, db)
	projectcontroller.ProjectController(router, db)
	taskcontroller.TaskController(router, db)

	router.Run()
}
