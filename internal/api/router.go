package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cityherald/content-api/internal/auth"
	"github.com/cityherald/content-api/internal/config"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, guard *auth.Guard, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(timeoutMiddleware(cfg.Server.RequestTimeout))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	userHandler := NewUserHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	engagementHandler := NewEngagementHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	apiGroup := router.Group("/api")
	{
		// Public reads, registration and login
		apiGroup.GET("/articles", articleHandler.GetAll)
		apiGroup.GET("/articles/:id", articleHandler.GetByID)
		apiGroup.GET("/media/:id", articleHandler.GetMedia)
		apiGroup.GET("/articles/:id/comments", commentHandler.List)
		apiGroup.POST("/articles/:id/comments", commentHandler.Create)
		apiGroup.POST("/articles/:id/like", articleHandler.Like)
		apiGroup.POST("/register", userHandler.Register)
		apiGroup.POST("/login", userHandler.Login)

		// Article mutations: create and delete are admin operations; update
		// admits an editor who authored the article, or an admin.
		apiGroup.POST("/articles", guard.Require(auth.Role(models.RoleAdmin)), articleHandler.Create)
		apiGroup.PUT("/articles/:id",
			guard.Require(auth.RoleWithOwnership(services.Article.IsAuthor, models.RoleEditor)),
			articleHandler.Update)
		apiGroup.DELETE("/articles/:id", guard.Require(auth.Role(models.RoleAdmin)), articleHandler.Delete)

		// Comment moderation
		apiGroup.DELETE("/articles/:id/comments/:commentId",
			guard.Require(auth.Role(models.RoleModerator)), commentHandler.Delete)

		// Profile
		apiGroup.GET("/user-profile", guard.Require(auth.Registered()), userHandler.GetProfile)
		apiGroup.PUT("/user-profile", guard.Require(auth.Registered()), userHandler.UpdateProfile)
		apiGroup.PUT("/user-profile/biography",
			guard.Require(auth.Role(models.RoleEditor)), userHandler.UpdateBiography)

		// Engagement
		user := apiGroup.Group("/user", guard.Require(auth.Registered()))
		{
			user.POST("/interests", engagementHandler.AddMembership(models.MembershipInterests))
			user.DELETE("/interests", engagementHandler.RemoveMembership(models.MembershipInterests))
			user.POST("/dislikes", engagementHandler.AddMembership(models.MembershipDislikes))
			user.DELETE("/dislikes", engagementHandler.RemoveMembership(models.MembershipDislikes))
			user.POST("/subscriptions", engagementHandler.AddMembership(models.MembershipSubscriptions))
			user.DELETE("/subscriptions", engagementHandler.RemoveMembership(models.MembershipSubscriptions))
			user.POST("/read-article", engagementHandler.TrackRead)
			user.GET("/articles", articleHandler.Feed)
		}

		// Admin surface
		admin := apiGroup.Group("/admin", guard.Require(auth.Role(models.RoleAdmin)))
		{
			admin.POST("/roles", userHandler.AssignRole)
			admin.POST("/articles", articleHandler.Create)
			admin.PUT("/articles/:id", articleHandler.Update)
			admin.DELETE("/articles/:id", articleHandler.Delete)
			admin.POST("/articles/:id/keywords", engagementHandler.AttachKeywords)
			admin.GET("/keywords", engagementHandler.ListKeywords)
			admin.POST("/keywords", engagementHandler.CreateKeyword)
			admin.DELETE("/keywords/:keyword", engagementHandler.DeleteKeyword)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "content-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+auth.IdentityHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// timeoutMiddleware bounds each request's store access. The store client is
// otherwise free to block forever.
func timeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
