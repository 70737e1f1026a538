package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"snabbit/models"
	"snabbit/services/user"
	"snabbit/utils"
)

// AuthHandler exposes the mock account endpoints.
type AuthHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

func NewAuthHandler(svc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{UserSvc: svc, Logger: logger}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var body struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone"`
		Password  string `json:"password" binding:"required,min=6"`
		Role      string `json:"role" binding:"required,oneof=customer helper"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload", err.Error())
		return
	}

	result, err := h.UserSvc.Register(body.FirstName, body.LastName, body.Email, body.Phone, body.Password, body.Role)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	result, err := h.UserSvc.Authenticate(body.Email, body.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// RevokeHandler handles DELETE /api/auth/revoke.
func (h *AuthHandler) RevokeHandler(c *gin.Context) {
	accountID := c.GetString("accountID")
	if err := h.UserSvc.RevokeToken(accountID); err != nil {
		h.Logger.Error("RevokeHandler: failed to revoke token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": true})
}

// HelperProfileHandler handles POST /api/helpers/profile.
func (h *AuthHandler) HelperProfileHandler(c *gin.Context) {
	var profile models.HelperRegistration
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid helper profile", err.Error())
		return
	}

	accountID := c.GetString("accountID")
	account, err := h.UserSvc.SetHelperProfile(accountID, profile)
	if err != nil {
		utils.JSONError(c, http.StatusForbidden, "failed to store helper profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, account)
}
