package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"retroexchange/backend/internal/auth"
	"retroexchange/backend/internal/logging"
)

// NewRouter wires the exchange's routes.
func NewRouter(h *Handler, resolver auth.IdentityResolver, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logging.Middleware(log), gin.Recovery())

	requireAuth := auth.AuthMiddleware(resolver)
	optionalAuth := auth.OptionalAuthMiddleware(resolver)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.POST("/token", h.LoginUser)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", h.RegisterUser)
		userRoutes.GET("/:id", h.GetUserByID)
		userRoutes.PUT("/:id", requireAuth, h.UpdateUser)
	}

	// Creation and deletion only consult the caller under strict ownership.
	gameRoutes := router.Group("/games")
	{
		gameRoutes.POST("", optionalAuth, h.CreateGame)
		gameRoutes.GET("", requireAuth, h.GetGames)
		gameRoutes.GET("/:id", h.GetGameByID)
		gameRoutes.PUT("/:id", requireAuth, h.UpdateGame)
		gameRoutes.DELETE("/:id", optionalAuth, h.DeleteGame)
	}

	return router
}
