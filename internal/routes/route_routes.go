package routes

import (
	"github.com/gin-gonic/gin"

	"routes_api/internal/controllers"
	"routes_api/internal/store"
)

func RouteRoutes(r *gin.Engine, s store.RouteStore) {
	rc := controllers.NewRouteController(s)

	routes := r.Group("/routes")
	{
		routes.POST("", rc.CreateRoute)
		routes.GET("", rc.ListRoutes)
		routes.GET("/count", rc.CountRoutes)
		routes.POST("/reset", rc.ResetRoutes)
		routes.GET("/:id", rc.GetRoute)
		routes.PATCH("/:id", rc.UpdateRoute)
		routes.PUT("/:id", rc.UpdateRoute)
		routes.DELETE("/:id", rc.DeleteRoute)
	}

	// Top-level alias kept for older clients.
	r.POST("/reset", rc.ResetRoutes)
}
