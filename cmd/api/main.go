package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ChadGichuki/Brain-Teaser/internal/config"
	"github.com/ChadGichuki/Brain-Teaser/internal/database"
	"github.com/ChadGichuki/Brain-Teaser/internal/handler"
	"github.com/ChadGichuki/Brain-Teaser/internal/repository/postgres"
	"github.com/ChadGichuki/Brain-Teaser/internal/service"
	"github.com/ChadGichuki/Brain-Teaser/internal/session"
)

func main() {
	cfg := config.Load()

	// Initialize database connection
	pool, err := database.ConnectPostgres(context.Background(), cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	// Initialize Redis client
	redisClient, err := database.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	categoryRepo := postgres.NewCategoryRepository(pool)
	questionRepo := postgres.NewQuestionRepository(pool)

	// Initialize session manager and services
	sessionManager := session.NewManager(redisClient)
	quizService := service.NewQuizService(questionRepo)

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	questionHandler := handler.NewQuestionHandler(questionRepo, categoryRepo)
	quizHandler := handler.NewQuizHandler(quizService, sessionManager)

	// Initialize Echo
	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Routes
	api := e.Group("/api")
	categoryHandler.Register(api)
	questionHandler.Register(api)
	quizHandler.Register(api)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Start server
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
