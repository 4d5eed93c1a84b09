package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"wardbook/internal/config"
	"wardbook/internal/database"
	"wardbook/internal/handlers"
	"wardbook/internal/middlewares"
	"wardbook/internal/repositories"
	"wardbook/internal/routes"
	"wardbook/internal/services"
)

// NewRouter wires repositories, services and handlers on top of store.
func NewRouter(cfg *config.Config, store *database.Store, sessionStore sessions.Store, logger *slog.Logger) *gin.Engine {
	// Dependency injection
	userRepo := repositories.NewUserRepository(store)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, logger)
	todoService := services.NewTodoService(repositories.NewTodoRepository(store))
	wardService := services.NewWardService(
		repositories.NewPatientRepository(store),
		repositories.NewDoctorRepository(store),
		repositories.NewMedicationRepository(store),
		repositories.NewStayRepository(store),
		repositories.NewTakesRepository(store),
		repositories.NewTreatsRepository(store),
		logger,
	)
	browseService := services.NewBrowseService(store, cfg.BrowseMaxLimit, cfg.BrowseAccountTables, logger)
	graphService := services.NewGraphService(store, logger)
	schemaService := services.NewSchemaService(repositories.NewSchemaRepository(store), cfg.BrowseAccountTables, logger)

	h := routes.Handlers{
		Health:   handlers.NewHealthHandler(store),
		Auth:     handlers.NewAuthHandler(authService, sessionStore, logger),
		User:     handlers.NewUserHandler(userService),
		Todo:     handlers.NewTodoHandler(todoService),
		Ward:     handlers.NewWardHandler(wardService),
		Explorer: handlers.NewExplorerHandler(browseService),
		Graph:    handlers.NewGraphHandler(graphService),
		Schema:   handlers.NewSchemaHandler(schemaService),
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middlewares.RequestLogger(logger),
		gzip.Gzip(gzip.DefaultCompression),
	)
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
			ExposeHeaders:    []string{middlewares.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	routes.RegisterRoutes(router, h, sessionStore, userService)
	return router
}

func NewServer(cfg *config.Config, store *database.Store, logger *slog.Logger) *http.Server {
	sessionStore := middlewares.NewSessionStore(cfg.SessionSecret, cfg.SessionSecure)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(cfg, store, sessionStore, logger),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
