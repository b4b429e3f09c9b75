package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// CatalogHandler handles divisions and categories
type CatalogHandler struct {
	divisions  *services.DivisionService
	categories *services.CategoryService
	activityRecorder
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(divisions *services.DivisionService, categories *services.CategoryService, activity *services.ActivityService) *CatalogHandler {
	return &CatalogHandler{divisions: divisions, categories: categories, activityRecorder: activityRecorder{activity}}
}

// ListDivisions lists divisions by display order
// @Summary List divisions
// @Tags divisions
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /admin/divisions [get]
func (h *CatalogHandler) ListDivisions(c *gin.Context) {
	divisions, err := h.divisions.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, divisions, len(divisions))
}

// CreateDivision creates a division
// @Summary Create division
// @Tags divisions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param division body models.DivisionRequest true "Division"
// @Success 201 {object} models.Division
// @Failure 400 {object} ErrorResponse
// @Router /admin/divisions [post]
func (h *CatalogHandler) CreateDivision(c *gin.Context) {
	var req models.DivisionRequest
	if !bindJSON(c, &req) {
		return
	}
	division, err := h.divisions.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	h.record(c, models.ActionCreate, models.EntityDivision, division.ID.String(), division.Slug)
	respondData(c, http.StatusCreated, division)
}

// UpdateDivision updates a division
// @Summary Update division
// @Tags divisions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Division ID"
// @Param division body models.DivisionRequest true "Division"
// @Success 200 {object} models.Division
// @Router /admin/divisions/{id} [put]
func (h *CatalogHandler) UpdateDivision(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.DivisionRequest
	if !bindJSON(c, &req) {
		return
	}
	division, err := h.divisions.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityDivision, division.ID.String(), division.Slug)
	respondData(c, http.StatusOK, division)
}

// DeleteDivision deletes a division
// @Summary Delete division
// @Tags divisions
// @Security BearerAuth
// @Param id path string true "Division ID"
// @Success 200 {object} models.SuccessResponse
// @Router /admin/divisions/{id} [delete]
func (h *CatalogHandler) DeleteDivision(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.divisions.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DELETE_FAILED")
		return
	}
	h.record(c, models.ActionDelete, models.EntityDivision, id.String(), "")
	respondData(c, http.StatusOK, nil)
}

// ListCategories lists categories, optionally those of one division
// @Summary List categories
// @Tags categories
// @Produce json
// @Param divisionId query string false "Division ID"
// @Success 200 {object} models.ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var divisionID *uuid.UUID
	if raw := c.Query("divisionId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid divisionId", "divisionId")
			return
		}
		divisionID = &id
	}
	categories, err := h.categories.List(c.Request.Context(), divisionID)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, categories, len(categories))
}

// CreateCategory creates a category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} ErrorResponse
// @Router /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.categories.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	h.record(c, models.ActionCreate, models.EntityCategory, category.ID.String(), category.Slug)
	respondData(c, http.StatusCreated, category)
}

// UpdateCategory updates a category
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body models.CategoryRequest true "Category"
// @Success 200 {object} models.Category
// @Router /admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.categories.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityCategory, category.ID.String(), category.Slug)
	respondData(c, http.StatusOK, category)
}

// DeleteCategory deletes a category
// @Summary Delete category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.SuccessResponse
// @Router /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DELETE_FAILED")
		return
	}
	h.record(c, models.ActionDelete, models.EntityCategory, id.String(), "")
	respondData(c, http.StatusOK, nil)
}
