package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"snabbit/services/location"
	"snabbit/utils"
)

// LocationHandler resolves client locations via the configured provider.
type LocationHandler struct {
	Provider location.Provider
}

func NewLocationHandler(provider location.Provider) *LocationHandler {
	return &LocationHandler{Provider: provider}
}

// ResolveHandler handles POST /api/location/resolve. With an empty body the
// client's IP is used as the hint.
func (h *LocationHandler) ResolveHandler(c *gin.Context) {
	var body struct {
		IP string `json:"ip"`
	}
	// Body is optional.
	_ = c.ShouldBindJSON(&body)

	hint := body.IP
	if hint == "" {
		hint = c.ClientIP()
	}

	result := h.Provider.Resolve(c.Request.Context(), hint)
	if !result.OK {
		utils.JSONError(c, http.StatusBadGateway, "location lookup failed", result.Err)
		return
	}
	c.JSON(http.StatusOK, result)
}
