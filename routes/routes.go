package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"snabbit/handlers"
	"snabbit/middleware"
)

// RegisterAuthRoutes registers the mock account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.DELETE("/revoke", middleware.JWTAuthMiddleware(hb.AuthCache, ""), hb.RevokeHandler)
	}
}

// RegisterCatalogRoutes registers service catalog and matching endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.POST("/matching/helpers", middleware.JWTAuthMiddleware(hb.AuthCache, ""), hb.MatchHelpersHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.AuthCache, ""))
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
		bookingGroup.GET("/history", hb.GetHistory)
		bookingGroup.GET("/:id", hb.GetBooking)
		bookingGroup.POST("/:id/status", hb.UpdateStatus)
	}
}

// RegisterChatRoutes sets up the mock chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	chatGroup := r.Group("/api/chat")
	{
		chatGroup.Use(middleware.JWTAuthMiddleware(hb.AuthCache, ""))
		chatGroup.GET("/:bookingID", hb.GetChatThread)
		chatGroup.POST("/:bookingID", hb.SendChatMessage)
	}
}

// RegisterExportRoutes sets up the PDF export endpoints.
func RegisterExportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	exportGroup := r.Group("/api/export")
	{
		exportGroup.Use(middleware.JWTAuthMiddleware(hb.AuthCache, ""))
		exportGroup.GET("/invoice/:bookingID", hb.InvoicePDF)
		exportGroup.GET("/report", hb.ReportPDF)
	}
}

// RegisterDashboardRoutes sets up helper dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	dashGroup := r.Group("/api/dashboard")
	{
		dashGroup.Use(middleware.JWTAuthMiddleware(hb.AuthCache, "helper"))
		dashGroup.GET("/earnings", hb.GetEarnings)
	}
	r.POST("/api/helpers/profile", middleware.JWTAuthMiddleware(hb.AuthCache, "helper"), hb.HelperProfileHandler)
}

// RegisterLocationRoutes sets up the location lookup endpoint.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/location/resolve", hb.ResolveLocation)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Snabbit"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterExportRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterHealthRoute(r)
}
