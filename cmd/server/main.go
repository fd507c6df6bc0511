package main

import (
	"log"
	"net/http"

	"routes_api/internal/config"
	"routes_api/internal/logger"
	"routes_api/internal/middleware"
	"routes_api/internal/routes"
	"routes_api/internal/store"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database and migrate the routes table
	config.InitDB()

	r := routes.SetupRouter(store.NewGormRouteStore(config.GetDB()))

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ServerAddr()
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
