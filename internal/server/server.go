package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minimalboard/internal/config"
	"minimalboard/internal/database"
	"minimalboard/internal/handler"
	"minimalboard/internal/middleware"
	"minimalboard/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to access DB handle: %w", err)
	}
	if err := database.Migrate(sqlDB, cfg.DBName); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Schema up to date")

	// Setup Gin
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewBoardListRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	boardHandler := handler.NewBoardHandler(boardRepo, userRepo, listRepo, cardRepo, cfg.PublicBaseURL)
	listHandler := handler.NewBoardListHandler(listRepo, boardRepo, cardRepo)
	cardHandler := handler.NewCardHandler(cardRepo, listRepo, boardRepo, userRepo)

	// User routes
	r.POST("/users", userHandler.Create)
	r.GET("/users/:id", userHandler.GetByID)

	// Board routes
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PUT("/boards/:id", boardHandler.Update)
	r.PATCH("/boards/:id", boardHandler.AddMembers)
	r.DELETE("/boards/:id", boardHandler.Delete)

	// Board list routes
	r.POST("/boardlists", listHandler.Create)
	r.GET("/boardlists/:id", listHandler.GetByID)
	r.PUT("/boardlists/:id", listHandler.Update)
	r.DELETE("/boardlists/:id", listHandler.Delete)

	// Card routes
	r.POST("/cards", cardHandler.Create)
	r.GET("/cards/:id", cardHandler.GetByID)
	r.PUT("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)

	// Enumeration views
	r.GET("/all_boards", boardHandler.GetAll)
	r.GET("/all_boards_data", boardHandler.GetAllData)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
