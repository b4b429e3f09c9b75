package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/middleware"
	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// AuthHandler handles admin sign-in
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login exchanges admin credentials for an access token
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Admin credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, resp)
}

// Me returns the signed-in admin
// @Summary Current admin
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AdminUser
// @Failure 401 {object} ErrorResponse
// @Router /admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.GetAdmin(c)
	admin, err := h.auth.Me(c.Request.Context(), &services.Claims{AdminID: actor.ID, Email: actor.Email})
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, admin)
}
