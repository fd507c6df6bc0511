package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping is the service-level liveness probe.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "pong"})
}

// RoutesPing is the resource-level liveness probe.
func RoutesPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
