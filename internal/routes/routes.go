package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"routes_api/internal/store"
)

// SetupRouter builds the gin engine with recovery and request logging and
// registers every endpoint group against the given store.
func SetupRouter(s store.RouteStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	HealthRoutes(r)
	RouteRoutes(r, s)

	return r
}
