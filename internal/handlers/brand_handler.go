package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// BrandHandler handles the brand pages of the back office
type BrandHandler struct {
	brands *services.BrandService
	activityRecorder
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brands *services.BrandService, activity *services.ActivityService) *BrandHandler {
	return &BrandHandler{brands: brands, activityRecorder: activityRecorder{activity}}
}

// ListBrands lists brands
// @Summary List brands
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in name, nameAr and description"
// @Param status query string false "active, disabled or all"
// @Success 200 {object} models.ListResponse
// @Router /admin/brands [get]
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brands.List(c.Request.Context(), services.BrandFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, brands, len(brands))
}

// GetBrand returns one brand
// @Summary Get brand
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} models.Brand
// @Failure 404 {object} ErrorResponse
// @Router /admin/brands/{id} [get]
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	brand, err := h.brands.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, brand)
}

// CreateBrand creates a brand
// @Summary Create brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body models.BrandRequest true "Brand"
// @Success 201 {object} models.Brand
// @Failure 400 {object} ErrorResponse
// @Router /admin/brands [post]
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req models.BrandRequest
	if !bindJSON(c, &req) {
		return
	}
	brand, err := h.brands.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	h.record(c, models.ActionCreate, models.EntityBrand, brand.ID.String(), brand.Name)
	respondData(c, http.StatusCreated, brand)
}

// UpdateBrand replaces the editable fields of a brand
// @Summary Update brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Param brand body models.BrandRequest true "Brand"
// @Success 200 {object} models.Brand
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.BrandRequest
	if !bindJSON(c, &req) {
		return
	}
	brand, err := h.brands.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityBrand, brand.ID.String(), brand.Name)
	respondData(c, http.StatusOK, brand)
}

// DeleteBrand deletes a brand
// @Summary Delete brand
// @Tags brands
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.brands.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DELETE_FAILED")
		return
	}
	h.record(c, models.ActionDelete, models.EntityBrand, id.String(), "")
	respondData(c, http.StatusOK, nil)
}

// UploadBrandLogo stores the logo of a brand
// @Summary Upload brand logo
// @Tags brands
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Brand ID"
// @Param file formData file true "Logo image"
// @Success 200 {object} models.Brand
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/brands/{id}/logo [post]
func (h *BrandHandler) UploadBrandLogo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	file, ok := readUpload(c, "file")
	if !ok {
		return
	}
	brand, err := h.brands.UploadLogo(c.Request.Context(), id, file)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpload, models.EntityBrand, brand.ID.String(), brand.Logo)
	respondData(c, http.StatusOK, brand)
}
