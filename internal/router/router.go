package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alytantawyy/Ehgezli-sub000/internal/auth"
	"github.com/alytantawyy/Ehgezli-sub000/internal/discovery"
	"github.com/alytantawyy/Ehgezli-sub000/internal/middleware"
	"github.com/alytantawyy/Ehgezli-sub000/internal/saved"
)

// NewRouter wires every route group onto one gin engine. Route registration
// lives here so main stays pure dependency construction.
func NewRouter(
	authHandler *auth.Handler,
	discoveryHandler *discovery.Handler,
	savedHandler *saved.Handler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:19006"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		me := authGroup.Group("/me")
		me.Use(middleware.AuthMiddleware())
		{
			me.PUT("/preferences", authHandler.UpdatePreferences)
			me.POST("/photo", authHandler.UploadPhoto)
		}
	}

	// ───────────────────────── DISCOVERY ─────────────────────────
	// Anonymous access is allowed; a token adds saved stamping and
	// favorite-cuisine ranking.
	discover := r.Group("/discover")
	discover.Use(middleware.OptionalAuth())
	{
		discover.GET("", discoveryHandler.Discover)
		discover.GET("/picker-default", discoveryHandler.PickerDefault)
	}

	// ───────────────────────── SAVED BRANCHES ─────────────────────────
	savedGroup := r.Group("/saved")
	savedGroup.Use(middleware.AuthMiddleware())
	{
		savedGroup.GET("", savedHandler.List)
		savedGroup.POST("", savedHandler.Save)
		savedGroup.DELETE("", savedHandler.Remove)
	}

	return r
}
