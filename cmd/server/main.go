package main

import (
	"log"

	_ "minimalboard/docs"
	"minimalboard/internal/config"
	"minimalboard/internal/server"
)

// @title           MinimalBoard API
// @version         1.0
// @description     CRUD backend for kanban boards, board lists, and cards.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
