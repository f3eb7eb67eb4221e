package routes

import (
	"net/http"

	"ezpt/handlers"
	"ezpt/middleware"
	"ezpt/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	gameTypeHandler *handlers.GameTypeHandler,
	sessionHandler *handlers.SessionHandler,
	eventHandler *handlers.EventHandler,
	statsHandler *handlers.StatsHandler,
	authService *services.AuthService,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		// Public read routes
		api.GET("/players", playerHandler.ListPlayers)
		api.GET("/players/:id", playerHandler.GetPlayerByID)
		api.GET("/game-types", gameTypeHandler.ListGameTypes)
		api.GET("/sessions", sessionHandler.ListSessions)
		api.GET("/sessions/:id", sessionHandler.GetSessionByID)
		api.GET("/events", eventHandler.ListEvents)
		api.GET("/events/:id", eventHandler.GetEventByID)
		api.GET("/stats", statsHandler.GetLeaderboard)
		api.GET("/stats/:playerId", statsHandler.GetPlayerStats)

		// Admin routes
		admin := api.Group("/")
		admin.Use(middleware.AdminRequired(authService))
		{
			admin.POST("/players", playerHandler.CreatePlayer)
			admin.PATCH("/players/:id", playerHandler.UpdatePlayer)

			admin.POST("/game-types", gameTypeHandler.CreateGameType)
			admin.PATCH("/game-types/:id", gameTypeHandler.UpdateGameType)
			admin.DELETE("/game-types/:id", gameTypeHandler.DeleteGameType)

			admin.POST("/sessions", sessionHandler.CreateSession)
			admin.PUT("/sessions/:id", sessionHandler.UpdateSession)
			admin.DELETE("/sessions/:id", sessionHandler.DeleteSession)

			admin.POST("/events", eventHandler.CreateEvent)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
