package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// SettingsHandler handles the settings singleton
type SettingsHandler struct {
	settings *services.SettingsService
	activityRecorder
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *services.SettingsService, activity *services.ActivityService) *SettingsHandler {
	return &SettingsHandler{settings: settings, activityRecorder: activityRecorder{activity}}
}

// GetSettings returns the settings, creating the defaults on first read
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /admin/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, settings)
}

// UpdateSettings merges the given fields into the settings
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body models.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} models.Settings
// @Router /admin/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	settings, err := h.settings.Update(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntitySettings, settings.ID, "")
	respondData(c, http.StatusOK, settings)
}

// UploadLogo replaces the logo of edos or eleman
// @Summary Upload group brand logo
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param brand path string true "edos or eleman"
// @Param file formData file true "Logo image"
// @Success 200 {object} models.Settings
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/settings/logo/{brand} [post]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, ok := readUpload(c, "file")
	if !ok {
		return
	}
	brand := models.ProductBrand(c.Param("brand"))
	settings, err := h.settings.UploadBrandLogo(c.Request.Context(), brand, file)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpload, models.EntitySettings, settings.ID, string(brand)+" logo")
	respondData(c, http.StatusOK, settings)
}
