package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"snabbit/models"
	"snabbit/services/booking"
	"snabbit/services/matching"
	"snabbit/services/user"
	"snabbit/utils"
)

// BookingHandler exposes the booking session and history endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingSessionService
	UserSvc    user.UserService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, userSvc user.UserService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, UserSvc: userSvc, Logger: logger}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var body struct {
		ServiceID int             `json:"serviceId" binding:"required"`
		SortBy    string          `json:"sortBy"`
		Location  models.Location `json:"location"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid session request", err.Error())
		return
	}

	sortKey := matching.SortKey(body.SortBy)
	if body.SortBy == "" {
		sortKey = matching.SortByTime
	}

	session, err := h.BookingSvc.InitiateSession(c.GetString("accountID"), body.ServiceID, sortKey, body.Location)
	if err != nil {
		h.Logger.Error("InitiateSession: failed", zap.Int("serviceId", body.ServiceID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to initiate booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"helpers":   session.MatchedHelpers,
	})
}

// UpdateSession handles PUT /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var body struct {
		HelperID      int    `json:"helperId"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid session update", err.Error())
		return
	}

	session, err := h.BookingSvc.UpdateSession(sessionID, body.HelperID, body.PaymentMethod)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking handles POST /api/booking/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid confirmation request", err.Error())
		return
	}

	account, err := h.UserSvc.GetByID(c.GetString("accountID"))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "unknown account", err.Error())
		return
	}

	record, err := h.BookingSvc.ConfirmBooking(body.SessionID, account.Details())
	if err != nil {
		h.Logger.Error("ConfirmBooking: failed", zap.String("sessionId", body.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to confirm booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.BookingSvc.CancelSession(c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// GetHistory handles GET /api/booking/history. The viewer role comes from the
// JWT; search, status, service and sortBy come from query parameters.
func (h *BookingHandler) GetHistory(c *gin.Context) {
	account, err := h.UserSvc.GetByID(c.GetString("accountID"))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "unknown account", err.Error())
		return
	}

	role := matching.ViewerCustomer
	if c.GetString("role") == "helper" {
		role = matching.ViewerHelper
	}

	records, err := h.BookingSvc.GetHistory(account.Details(), booking.HistoryQuery{
		Search:        c.Query("q"),
		StatusFilter:  c.DefaultQuery("status", matching.StatusFilterAll),
		ServiceFilter: c.DefaultQuery("service", matching.ServiceFilterAll),
		SortKey:       matching.ParseHistorySortKey(c.Query("sortBy")),
		Role:          role,
	})
	if err != nil {
		h.Logger.Error("GetHistory: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records, "count": len(records)})
}

// GetBooking handles GET /api/booking/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	record, err := h.BookingSvc.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateStatus handles POST /api/booking/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required,oneof=active completed cancelled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status update", err.Error())
		return
	}

	record, err := h.BookingSvc.UpdateStatus(c.Param("id"), models.BookingStatus(body.Status))
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "failed to update booking status", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetEarnings handles GET /api/dashboard/earnings?helperId=N.
func (h *BookingHandler) GetEarnings(c *gin.Context) {
	helperID, err := strconv.Atoi(c.Query("helperId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid helperId", c.Query("helperId"))
		return
	}
	c.JSON(http.StatusOK, h.BookingSvc.Earnings(helperID, time.Now()))
}
