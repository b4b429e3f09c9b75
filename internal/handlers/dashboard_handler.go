package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// DashboardHandler serves the dashboard counters and the activity feed
type DashboardHandler struct {
	dashboard *services.DashboardService
	activity  *services.ActivityService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *services.DashboardService, activity *services.ActivityService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, activity: activity}
}

// GetStats returns the dashboard counters
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Router /admin/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, stats)
}

// ListActivity returns the newest activity entries
// @Summary Activity log
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param entityType query string false "Entity type"
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {object} models.ListResponse
// @Router /admin/activity [get]
func (h *DashboardHandler) ListActivity(c *gin.Context) {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a positive number", "limit")
			return
		}
		limit = min(n, maxActivityLimit)
	}

	entries, err := h.activity.List(c.Request.Context(), models.EntityType(c.Query("entityType")), limit)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, entries, len(entries))
}
