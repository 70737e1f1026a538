package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"snabbit/services/booking"
	"snabbit/services/chat"
	"snabbit/utils"
)

// ChatHandler exposes the mock chat threads.
type ChatHandler struct {
	ChatSvc    chat.Service
	BookingSvc booking.BookingSessionService
	Logger     *zap.Logger
}

func NewChatHandler(chatSvc chat.Service, bookingSvc booking.BookingSessionService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{ChatSvc: chatSvc, BookingSvc: bookingSvc, Logger: logger}
}

// GetThread handles GET /api/chat/:bookingID.
func (h *ChatHandler) GetThread(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if _, err := h.BookingSvc.GetBooking(bookingID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	messages, err := h.ChatSvc.GetThread(bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "chat thread not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SendMessage handles POST /api/chat/:bookingID.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid message", err.Error())
		return
	}

	sender := c.GetString("role")
	msg, err := h.ChatSvc.Append(c.Param("bookingID"), sender, body.Text)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to send message", err.Error())
		return
	}
	c.JSON(http.StatusCreated, msg)
}
