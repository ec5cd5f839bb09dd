package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Jugal-Chanda/demo-CICD-github/handlers"
	"github.com/Jugal-Chanda/demo-CICD-github/middleware"
	"github.com/Jugal-Chanda/demo-CICD-github/models"
)

func SetupRoutes(h *handlers.HandlerManager) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), middleware.RequestID(), cors.Default())

	r.GET("/", h.HealthHandler.Check)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", h.UserHandler.ListUsers)
			users.POST("", h.UserHandler.CreateUser)
			users.POST("/bulk", h.UserHandler.BulkCreateUsers)
			users.GET("/:id", h.UserHandler.GetUser)
			users.PUT("/:id", h.UserHandler.UpdateUser)
			users.DELETE("/:id", h.UserHandler.DeleteUser)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeNotFound, "Endpoint not found", ""))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse(models.CodeValidationError, "Method not allowed", ""))
	})

	return r
}
