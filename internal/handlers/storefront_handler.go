package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spydz12/Eleman-Shoes/internal/middleware"
	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
	"github.com/spydz12/Eleman-Shoes/internal/whatsapp"
)

// StorefrontHandler serves the public catalog
type StorefrontHandler struct {
	settings   *services.SettingsService
	brands     *services.BrandService
	divisions  *services.DivisionService
	categories *services.CategoryService
	products   *services.ProductService
	orders     *services.OrderService
	number     string
}

// StorefrontDeps groups the services the storefront reads from
type StorefrontDeps struct {
	Settings   *services.SettingsService
	Brands     *services.BrandService
	Divisions  *services.DivisionService
	Categories *services.CategoryService
	Products   *services.ProductService
	Orders     *services.OrderService
	// WhatsappNumber receives the price requests of product pages
	WhatsappNumber string
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(deps StorefrontDeps) *StorefrontHandler {
	number := deps.WhatsappNumber
	if whatsapp.Digits(number) == "" {
		number = whatsapp.DefaultNumber
	}
	return &StorefrontHandler{
		settings:   deps.Settings,
		brands:     deps.Brands,
		divisions:  deps.Divisions,
		categories: deps.Categories,
		products:   deps.Products,
		orders:     deps.Orders,
		number:     number,
	}
}

// WhatsappLink is the price-request deep link of a product image
type WhatsappLink struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// ContactInfo is what the contact page shows
type ContactInfo struct {
	GroupName   string `json:"groupName"`
	GroupNameAr string `json:"groupNameAr"`
	DisplayName string `json:"displayName"`
	Whatsapp    string `json:"whatsapp"`
	WhatsappURL string `json:"whatsappUrl"`
	Email       string `json:"email"`
}

// GetSettings returns the branding every page renders
// @Summary Storefront settings
// @Tags storefront
// @Produce json
// @Param lang query string false "fr or ar"
// @Success 200 {object} models.Settings
// @Router /storefront/settings [get]
func (h *StorefrontHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	locale := middleware.GetLocale(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
		"locale":  locale,
		"dir":     locale.Direction(),
	})
}

// ListBrands returns the active brands
// @Summary Storefront brands
// @Tags storefront
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /storefront/brands [get]
func (h *StorefrontHandler) ListBrands(c *gin.Context) {
	brands, err := h.brands.List(c.Request.Context(), services.BrandFilter{Status: string(models.BrandStatusActive)})
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, brands, len(brands))
}

// ListDivisions returns the divisions by display order
// @Summary Storefront divisions
// @Tags storefront
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /storefront/divisions [get]
func (h *StorefrontHandler) ListDivisions(c *gin.Context) {
	divisions, err := h.divisions.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, divisions, len(divisions))
}

// ListCategories returns the categories, optionally of one division
// @Summary Storefront categories
// @Tags storefront
// @Produce json
// @Param divisionId query string false "Division ID"
// @Success 200 {object} models.ListResponse
// @Router /storefront/categories [get]
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
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

// ListProducts returns the active products with the filter options
// @Summary Storefront catalog
// @Tags storefront
// @Produce json
// @Param search query string false "Search in French name"
// @Param brand query string false "edos, eleman or all"
// @Param category query string false "Category or all"
// @Param color query string false "Color name or all"
// @Success 200 {object} services.StorefrontCatalog
// @Router /storefront/products [get]
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	catalog, err := h.products.StorefrontList(c.Request.Context(), services.StorefrontFilter{
		Search:   c.Query("search"),
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
		Color:    c.Query("color"),
	})
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, catalog)
}

// GetProduct returns an active product
// @Summary Storefront product
// @Tags storefront
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /storefront/products/{id} [get]
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.products.GetActive(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, product)
}

// GetWhatsappLink builds the price-request link of a product image.
// color and image are indexes; image defaults to the main image.
// @Summary WhatsApp price request link
// @Tags storefront
// @Produce json
// @Param id path string true "Product ID"
// @Param color query int false "Color index"
// @Param image query int false "Image index"
// @Param lang query string false "fr or ar"
// @Success 200 {object} WhatsappLink
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /storefront/products/{id}/whatsapp [get]
func (h *StorefrontHandler) GetWhatsappLink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	colorIndex, ok := queryIndex(c, "color")
	if !ok {
		return
	}
	imageIndex, ok := queryIndex(c, "image")
	if !ok {
		return
	}

	product, err := h.products.GetActive(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}

	var color *models.ColorVariant
	image := ""
	if len(product.ColorVariants) > 0 {
		i := 0
		if colorIndex != nil {
			i = *colorIndex
		}
		color, err = product.Color(i)
		if err != nil {
			handleServiceError(c, err, "FETCH_FAILED")
			return
		}
		if imageIndex != nil {
			if *imageIndex >= len(color.Images) {
				respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image not found", "image")
				return
			}
			image = color.Images[*imageIndex]
		}
	}

	message := whatsapp.ProductMessage(middleware.GetLocale(c), product, color, image)
	respondData(c, http.StatusOK, WhatsappLink{URL: whatsapp.Link(h.number, message), Message: message})
}

// GetContact returns the contact details of the group
// @Summary Contact details
// @Tags storefront
// @Produce json
// @Param lang query string false "fr or ar"
// @Success 200 {object} ContactInfo
// @Router /storefront/contact [get]
func (h *StorefrontHandler) GetContact(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, ContactInfo{
		GroupName:   settings.GroupName,
		GroupNameAr: settings.GroupNameAr,
		DisplayName: middleware.GetLocale(c).Pick(settings.GroupName, settings.GroupNameAr),
		Whatsapp:    settings.PrimaryWhatsapp,
		WhatsappURL: whatsapp.Link(settings.PrimaryWhatsapp, ""),
		Email:       settings.PrimaryEmail,
	})
}

// CreateOrder records a wholesale order request from a retailer
// @Summary Request a wholesale order
// @Tags storefront
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order request"
// @Success 201 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Router /storefront/orders [post]
func (h *StorefrontHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, _, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	respondData(c, http.StatusCreated, order)
}

func queryIndex(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name+" index", name)
		return nil, false
	}
	return &i, true
}
