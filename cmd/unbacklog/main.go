package main

import (
	"log"

	_ "unbacklog/docs"
	"unbacklog/internal/config"
	"unbacklog/internal/server"
)

// @title           UnBacklog Client
// @version         1.0
// @description     Web client for the UnBacklog project-management API: projects, user stories, sprints and the kanban board.

// @host      localhost:3000
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Client initialization failed: %v", err)
	}

	s.Run()
}
