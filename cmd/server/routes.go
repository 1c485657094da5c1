package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"laundry-scout.backend/internal/interfaces/http/handlers"
	"laundry-scout.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler          *handlers.AuthHandler
	applicationHandler   *handlers.ApplicationHandler
	clientHandler        *handlers.ClientHandler
	userHandler          *handlers.UserHandler
	historyHandler       *handlers.HistoryHandler
	feedbackHandler      *handlers.FeedbackHandler
	dashboardHandler     *handlers.DashboardHandler
	notificationHandler  *handlers.NotificationHandler
	profileHandler       *handlers.ProfileHandler
	searchHistoryHandler *handlers.SearchHistoryHandler
	authMiddleware       gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Application review routes (protected)
		applications := v1.Group("/applications")
		applications.Use(d.authMiddleware)
		{
			applications.GET("", d.applicationHandler.List)
			applications.GET("/rejection-reasons", d.applicationHandler.RejectionReasons)
			applications.GET("/:id", d.applicationHandler.Review)
			applications.POST("/:id/approve", middleware.IdempotencyMiddleware(), d.applicationHandler.Approve)
			applications.POST("/:id/reject", middleware.IdempotencyMiddleware(), d.applicationHandler.Reject)
		}

		// Approved business (client) routes (protected)
		clients := v1.Group("/clients")
		clients.Use(d.authMiddleware)
		{
			clients.GET("", d.clientHandler.List)
			clients.GET("/:id", d.clientHandler.Get)
		}

		// Customer account routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("", d.userHandler.List)
			users.GET("/:id", d.userHandler.Get)
			users.DELETE("/:id", d.userHandler.Delete)
		}

		// Review history (protected)
		history := v1.Group("/history")
		history.Use(d.authMiddleware)
		{
			history.GET("", d.historyHandler.List)
		}

		// Feedback views (protected)
		feedback := v1.Group("/feedback")
		feedback.Use(d.authMiddleware)
		{
			feedback.GET("", d.feedbackHandler.List)
			feedback.GET("/summary", d.feedbackHandler.Summary)
		}

		// Dashboard aggregates (protected)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(d.authMiddleware)
		{
			dashboard.GET("/stats", d.dashboardHandler.Stats)
			dashboard.GET("/ratings", d.dashboardHandler.Ratings)
			dashboard.GET("/recent-applications", d.dashboardHandler.RecentApplications)
			dashboard.GET("/recent-history", d.dashboardHandler.RecentHistory)
		}

		// Notifications (protected; the stream authenticates by query token)
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", d.authMiddleware, d.notificationHandler.Feed)
			notifications.POST("/push", d.authMiddleware, d.notificationHandler.Push)
			notifications.GET("/stream", d.notificationHandler.Stream)
		}

		// Admin profile and settings (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.Get)
			profile.PATCH("", d.profileHandler.Update)
			profile.PUT("/avatar", d.profileHandler.SetAvatar)
		}
		settings := v1.Group("/settings")
		settings.Use(d.authMiddleware)
		{
			settings.GET("", d.profileHandler.GetSettings)
			settings.PUT("", d.profileHandler.UpdateSettings)
		}

		// Per-page search history (protected)
		searchHistory := v1.Group("/search-history")
		searchHistory.Use(d.authMiddleware)
		{
			searchHistory.GET("", d.searchHistoryHandler.List)
			searchHistory.POST("", d.searchHistoryHandler.Record)
			searchHistory.DELETE("", d.searchHistoryHandler.Remove)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "laundry-scout-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
