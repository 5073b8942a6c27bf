package main

import (
	"log"
	"net/http"

	"gym_portal/internal/config"
	"gym_portal/internal/logger"
	"gym_portal/internal/middleware"
	"gym_portal/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database and migrate the schema
	config.InitDB()

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.GetEnv("LISTEN_ADDR", "0.0.0.0:8080")
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
