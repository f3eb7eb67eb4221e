package main

import (
	"log"

	"ezpt/config"
	"ezpt/handlers"
	"ezpt/middleware"
	"ezpt/models"
	"ezpt/routes"
	"ezpt/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.GameType{},
		&models.Event{},
		&models.Session{},
		&models.Participant{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.SessionSecret)
	loginLimiter := services.NewLoginLimiter(redisClient)
	playerService := services.NewPlayerService(db)
	gameTypeService := services.NewGameTypeService(db)
	sessionService := services.NewSessionService(db)
	eventService := services.NewEventService(db)
	statsService := services.NewStatsService(services.NewGormStatsStore(db))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, loginLimiter)
	playerHandler := handlers.NewPlayerHandler(playerService)
	gameTypeHandler := handlers.NewGameTypeHandler(gameTypeService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	eventHandler := handlers.NewEventHandler(eventService, statsService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, playerHandler, gameTypeHandler, sessionHandler, eventHandler, statsHandler, authService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
