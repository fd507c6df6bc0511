package routes

import (
	"github.com/gin-gonic/gin"

	"routes_api/internal/controllers"
)

func HealthRoutes(r *gin.Engine) {
	r.GET("/ping", controllers.Ping)
	r.GET("/routes/ping", controllers.RoutesPing)
}
