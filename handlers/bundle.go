package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle aggregates every registered endpoint so routes can be wired
// from a single value.
type HandlerBundle struct {
	AuthCache *redis.Client

	// Auth endpoints.
	RegisterHandler      gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	RevokeHandler        gin.HandlerFunc
	HelperProfileHandler gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler gin.HandlerFunc
	GetServiceHandler   gin.HandlerFunc
	MatchHelpersHandler gin.HandlerFunc

	// Booking endpoints.
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	GetHistory      gin.HandlerFunc
	GetBooking      gin.HandlerFunc
	UpdateStatus    gin.HandlerFunc
	GetEarnings     gin.HandlerFunc

	// Chat endpoints.
	GetChatThread   gin.HandlerFunc
	SendChatMessage gin.HandlerFunc

	// Export endpoints.
	InvoicePDF gin.HandlerFunc
	ReportPDF  gin.HandlerFunc

	// Location endpoint.
	ResolveLocation gin.HandlerFunc
}
