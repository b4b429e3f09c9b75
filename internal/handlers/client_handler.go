package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// ClientHandler handles the retailer directory
type ClientHandler struct {
	clients *services.ClientService
	exports *services.ExportService
	activityRecorder
}

// NewClientHandler creates a new client handler
func NewClientHandler(clients *services.ClientService, exports *services.ExportService, activity *services.ActivityService) *ClientHandler {
	return &ClientHandler{clients: clients, exports: exports, activityRecorder: activityRecorder{activity}}
}

// ListClients lists clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in company, country, WhatsApp and email"
// @Success 200 {object} models.ListResponse
// @Router /admin/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context(), services.ClientFilter{Search: c.Query("search")})
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, clients, len(clients))
}

// ExportClients downloads the filtered clients as a workbook
// @Summary Export clients
// @Tags clients
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/clients/export [get]
func (h *ClientHandler) ExportClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context(), services.ClientFilter{Search: c.Query("search")})
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	buf, err := h.exports.Clients(clients)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	sendAttachment(c, exportFilename("clients"), services.XLSXContentType, buf.Bytes())
}

// GetClient returns one client
// @Summary Get client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} ErrorResponse
// @Router /admin/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, client)
}

// CreateClient adds a client
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body models.ClientRequest true "Client"
// @Success 201 {object} models.Client
// @Failure 400 {object} ErrorResponse
// @Router /admin/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	client, err := h.clients.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	h.record(c, models.ActionCreate, models.EntityClient, client.ID.String(), client.CompanyName)
	respondData(c, http.StatusCreated, client)
}

// UpdateClient edits the contact fields and notes of a client
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param client body models.ClientRequest true "Client"
// @Success 200 {object} models.Client
// @Router /admin/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ClientRequest
	if !bindJSON(c, &req) {
		return
	}
	client, err := h.clients.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityClient, client.ID.String(), client.CompanyName)
	respondData(c, http.StatusOK, client)
}

// DeleteClient deletes a client
// @Summary Delete client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} models.SuccessResponse
// @Router /admin/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DELETE_FAILED")
		return
	}
	h.record(c, models.ActionDelete, models.EntityClient, id.String(), "")
	respondData(c, http.StatusOK, nil)
}
