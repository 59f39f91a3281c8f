package main

import (
	"log"
	"net/http"

	"roadfreight/internal/config"
	"roadfreight/internal/logger"
	"roadfreight/internal/middleware"
	"roadfreight/internal/migrations"
	"roadfreight/internal/routes"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database; no point serving without it
	db, err := config.Connect()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migrations.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	r := routes.SetupRouter(db, ginlog.SetLogger(), gin.Recovery())

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ServerAddr()
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
