package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"snabbit/database/catalog"
	"snabbit/models"
	"snabbit/services/matching"
	"snabbit/utils"
)

// CatalogHandler serves the fixed service catalog.
type CatalogHandler struct {
	Services catalog.ServiceRepository
	Helpers  catalog.HelperRepository
	Logger   *zap.Logger
}

func NewCatalogHandler(services catalog.ServiceRepository, helpers catalog.HelperRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Services: services, Helpers: helpers, Logger: logger}
}

// ListServicesHandler handles GET /api/services with optional q, minPrice,
// maxPrice and emergency query parameters.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	query := c.Query("q")
	emergencyOnly := c.Query("emergency") == "true"

	priceRange := models.PriceRange{Min: 0, Max: math.MaxFloat64}
	if v := c.Query("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid minPrice", v)
			return
		}
		priceRange.Min = min
	}
	if v := c.Query("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid maxPrice", v)
			return
		}
		priceRange.Max = max
	}

	filtered := matching.FilterServices(h.Services.GetAll(), query, priceRange, emergencyOnly)

	// Each service carries the count of currently available helpers covering it.
	helpers := h.Helpers.GetAll()
	type serviceWithAvailability struct {
		models.Service
		AvailableHelpers int `json:"availableHelpers"`
	}
	out := make([]serviceWithAvailability, 0, len(filtered))
	for _, svc := range filtered {
		count := 0
		for _, helper := range helpers {
			if helper.IsAvailable && helper.HasSkill(svc.Name) {
				count++
			}
		}
		out = append(out, serviceWithAvailability{Service: svc, AvailableHelpers: count})
	}

	c.JSON(http.StatusOK, out)
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id", c.Param("id"))
		return
	}
	service, err := h.Services.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "service not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, service)
}

// MatchHelpersHandler handles POST /api/matching/helpers.
func (h *CatalogHandler) MatchHelpersHandler(matchingSvc matching.MatchingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ServiceID int    `json:"serviceId" binding:"required"`
			SortBy    string `json:"sortBy"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid match request", err.Error())
			return
		}

		sortKey := matching.SortKey(body.SortBy)
		if body.SortBy == "" {
			sortKey = matching.SortByTime
		}

		helpers, err := matchingSvc.MatchHelpers(body.ServiceID, sortKey)
		if err != nil {
			h.Logger.Error("MatchHelpersHandler: matching failed", zap.Int("serviceId", body.ServiceID), zap.Error(err))
			utils.JSONError(c, http.StatusNotFound, "failed to match helpers", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"helpers": helpers, "count": len(helpers)})
	}
}
