package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unbacklog/internal/config"
	"unbacklog/internal/handler"
	"unbacklog/internal/remote"
	"unbacklog/internal/session"
	"unbacklog/internal/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine   *gin.Engine
	Sessions *session.Store
	Config   *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Remote API client; its cookie jar carries the session.
	client, err := remote.New(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	// Initialize stores
	sessions := session.New(client)
	projects := store.New()

	// Try to recover an identity from a previous session before the
	// first view renders.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	sessions.Resolve(ctx)
	cancel()
	if _, ok := sessions.User(); ok {
		log.Println("✅ Session restored")
	} else {
		log.Println("ℹ️  No session, login required")
	}

	// Setup Gin
	r := gin.Default()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(sessions)
	projectHandler := handler.NewProjectHandler(client, projects, sessions)
	storyHandler := handler.NewStoryHandler(client, projects, sessions)
	sprintHandler := handler.NewSprintHandler(client, projects, sessions)
	boardHandler := handler.NewBoardHandler(client, projects, sessions)

	// Auth routes
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/logout", authHandler.Logout)
	r.GET("/me", authHandler.Me)

	// Project routes
	r.GET("/projects", projectHandler.List)
	r.POST("/projects", projectHandler.Create)
	r.POST("/projects/:id/open", projectHandler.Open)

	// Story routes
	r.GET("/stories", storyHandler.List)
	r.POST("/stories", storyHandler.Create)
	r.PUT("/stories/:id", storyHandler.Update)
	r.DELETE("/stories/:id", storyHandler.Delete)

	// Sprint routes
	r.GET("/sprints", sprintHandler.List)
	r.POST("/sprints", sprintHandler.Create)
	r.PUT("/sprints/:id", sprintHandler.Update)
	r.DELETE("/sprints/:id", sprintHandler.Delete)

	// Board routes
	r.GET("/board", boardHandler.View)
	r.POST("/board/tasks", boardHandler.CreateTask)
	r.POST("/board/tasks/:id/move", boardHandler.MoveTask)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine:   r,
		Sessions: sessions,
		Config:   cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 UnBacklog client running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
