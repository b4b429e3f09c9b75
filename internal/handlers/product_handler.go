package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// ProductHandler handles the product editor of the back office
type ProductHandler struct {
	products *services.ProductService
	exports  *services.ExportService
	activityRecorder
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *services.ProductService, exports *services.ExportService, activity *services.ActivityService) *ProductHandler {
	return &ProductHandler{products: products, exports: exports, activityRecorder: activityRecorder{activity}}
}

// ListProducts lists products for the admin table
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in French name and reference"
// @Param brand query string false "edos, eleman or all"
// @Param status query string false "active, hidden or all"
// @Success 200 {object} models.ListResponse
// @Router /admin/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.products.AdminList(c.Request.Context(), productFilter(c))
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, products, len(products))
}

// ExportProducts downloads the filtered products as a workbook
// @Summary Export products
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/products/export [get]
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	products, err := h.products.AdminList(c.Request.Context(), productFilter(c))
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	buf, err := h.exports.Products(products)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	sendAttachment(c, exportFilename("products"), services.XLSXContentType, buf.Bytes())
}

// GetProduct returns one product
// @Summary Get product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, product)
}

// CreateProduct creates a product. Every color needs 4 to 5 images.
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.products.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	h.record(c, models.ActionCreate, models.EntityProduct, product.ID.String(), product.Reference)
	respondData(c, http.StatusCreated, product)
}

// UpdateProduct replaces a product
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.ProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.products.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityProduct, product.ID.String(), product.Reference)
	respondData(c, http.StatusOK, product)
}

// DeleteProduct deletes a product
// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.SuccessResponse
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DELETE_FAILED")
		return
	}
	h.record(c, models.ActionDelete, models.EntityProduct, id.String(), "")
	respondData(c, http.StatusOK, nil)
}

// UpdateProductStatus shows or hides a product on the storefront
// @Summary Set product status
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param status body models.ProductStatusRequest true "Status"
// @Success 200 {object} models.Product
// @Router /admin/products/{id}/status [patch]
func (h *ProductHandler) UpdateProductStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ProductStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.products.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionStatus, models.EntityProduct, product.ID.String(), string(product.Status))
	respondData(c, http.StatusOK, product)
}

// AddColor appends a color variant. The multipart form carries name,
// nameAr, hexCode and 4 to 5 files.
// @Summary Add color variant
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param name formData string true "Color name"
// @Param nameAr formData string false "Arabic color name"
// @Param hexCode formData string false "Hex code"
// @Param files formData file true "Images"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/{id}/colors [post]
func (h *ProductHandler) AddColor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	files, ok := readUploads(c, "files")
	if !ok {
		return
	}
	req := &models.ColorRequest{
		Name:    c.PostForm("name"),
		NameAr:  c.PostForm("nameAr"),
		HexCode: c.PostForm("hexCode"),
	}
	product, err := h.products.AddColor(c.Request.Context(), id, req, files)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityProduct, product.ID.String(), "color added: "+req.Name)
	respondData(c, http.StatusCreated, product)
}

// UpdateColor renames a color variant
// @Summary Update color variant
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param color path int true "Color index"
// @Param body body models.ColorRequest true "Color"
// @Success 200 {object} models.Product
// @Router /admin/products/{id}/colors/{color} [put]
func (h *ProductHandler) UpdateColor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	colorIndex, ok := parseIndex(c, "color")
	if !ok {
		return
	}
	var req models.ColorRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.products.UpdateColor(c.Request.Context(), id, colorIndex, &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityProduct, product.ID.String(), "color updated: "+req.Name)
	respondData(c, http.StatusOK, product)
}

// RemoveColor deletes a color variant
// @Summary Remove color variant
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param color path int true "Color index"
// @Success 200 {object} models.Product
// @Router /admin/products/{id}/colors/{color} [delete]
func (h *ProductHandler) RemoveColor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	colorIndex, ok := parseIndex(c, "color")
	if !ok {
		return
	}
	product, err := h.products.RemoveColor(c.Request.Context(), id, colorIndex)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityProduct, product.ID.String(), fmt.Sprintf("color %d removed", colorIndex))
	respondData(c, http.StatusOK, product)
}

// UploadColorImages adds images to a color variant up to the limit of 5
// @Summary Upload color images
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param color path int true "Color index"
// @Param files formData file true "Images"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/products/{id}/colors/{color}/images [post]
func (h *ProductHandler) UploadColorImages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	colorIndex, ok := parseIndex(c, "color")
	if !ok {
		return
	}
	files, ok := readUploads(c, "files")
	if !ok {
		return
	}
	product, result, err := h.products.UploadColorImages(c.Request.Context(), id, colorIndex, files)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpload, models.EntityProduct, product.ID.String(), fmt.Sprintf("%d images uploaded", len(result.URLs)))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     product,
		"uploaded": result.URLs,
		"rejected": result.Rejected,
	})
}

// RemoveColorImage deletes one image of a color variant
// @Summary Remove color image
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param color path int true "Color index"
// @Param image path int true "Image index"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/{id}/colors/{color}/images/{image} [delete]
func (h *ProductHandler) RemoveColorImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	colorIndex, ok := parseIndex(c, "color")
	if !ok {
		return
	}
	imageIndex, ok := parseIndex(c, "image")
	if !ok {
		return
	}
	product, err := h.products.RemoveColorImage(c.Request.Context(), id, colorIndex, imageIndex)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityProduct, product.ID.String(), fmt.Sprintf("image %d of color %d removed", imageIndex, colorIndex))
	respondData(c, http.StatusOK, product)
}

// SetMainImage designates the main image of a color variant
// @Summary Set main image
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param color path int true "Color index"
// @Param body body models.MainImageRequest true "Image index"
// @Success 200 {object} models.Product
// @Router /admin/products/{id}/colors/{color}/main-image [put]
func (h *ProductHandler) SetMainImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	colorIndex, ok := parseIndex(c, "color")
	if !ok {
		return
	}
	var req models.MainImageRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.products.SetMainImage(c.Request.Context(), id, colorIndex, *req.Index)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityProduct, product.ID.String(), fmt.Sprintf("main image of color %d set to %d", colorIndex, *req.Index))
	respondData(c, http.StatusOK, product)
}

// UploadDraftImages stores images for a product that is not saved yet.
// existing is the number of images the draft color already holds.
// @Summary Upload draft product images
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Images"
// @Param existing formData int false "Images already on the color"
// @Success 200 {object} services.ImageUploadResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/uploads/product-images [post]
func (h *ProductHandler) UploadDraftImages(c *gin.Context) {
	files, ok := readUploads(c, "files")
	if !ok {
		return
	}
	existing := 0
	if raw := c.PostForm("existing"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "existing must be a non-negative number", "existing")
			return
		}
		existing = n
	}
	result, err := h.products.UploadDraftImages(c.Request.Context(), existing, files)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	respondData(c, http.StatusOK, result)
}

func productFilter(c *gin.Context) services.ProductFilter {
	return services.ProductFilter{
		Search: c.Query("search"),
		Brand:  c.Query("brand"),
		Status: c.Query("status"),
	}
}

func exportFilename(kind string) string {
	return fmt.Sprintf("%s_%s.xlsx", kind, time.Now().Format("20060102"))
}
