package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// InvoiceHandler handles invoices and their PDFs
type InvoiceHandler struct {
	invoices *services.InvoiceService
	activityRecorder
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoices *services.InvoiceService, activity *services.ActivityService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, activityRecorder: activityRecorder{activity}}
}

// ListInvoices lists invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ListResponse
// @Router /admin/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoices.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, invoices, len(invoices))
}

// GetInvoice returns one invoice
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} ErrorResponse
// @Router /admin/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoices.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, invoice)
}

// CreateInvoice bills an order
// @Summary Create invoice from order
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body models.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} ErrorResponse
// @Router /admin/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	invoice, err := h.invoices.CreateFromOrder(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	h.record(c, models.ActionCreate, models.EntityInvoice, invoice.ID.String(), invoice.InvoiceNumber)
	respondData(c, http.StatusCreated, invoice)
}

// UpdateInvoiceStatus moves an invoice through draft, sent and paid
// @Summary Update invoice status
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param status body models.UpdateInvoiceStatusRequest true "Status"
// @Success 200 {object} models.Invoice
// @Failure 409 {object} ErrorResponse
// @Router /admin/invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateInvoiceStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	invoice, err := h.invoices.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionStatus, models.EntityInvoice, invoice.ID.String(), string(invoice.Status))
	respondData(c, http.StatusOK, invoice)
}

// DownloadInvoicePDF streams the rendered invoice
// @Summary Download invoice PDF
// @Tags invoices
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /admin/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pdf, invoice, err := h.invoices.RenderPDF(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	sendAttachment(c, invoice.InvoiceNumber+".pdf", "application/pdf", pdf)
}

// GenerateInvoicePDF renders the invoice, stores it and saves its URL
// @Summary Generate invoice PDF
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 502 {object} ErrorResponse
// @Router /admin/invoices/{id}/pdf [post]
func (h *InvoiceHandler) GenerateInvoicePDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoices.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpload, models.EntityInvoice, invoice.ID.String(), invoice.PdfURL)
	respondData(c, http.StatusOK, invoice)
}

// DeleteInvoice deletes an invoice
// @Summary Delete invoice
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.SuccessResponse
// @Router /admin/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.invoices.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DELETE_FAILED")
		return
	}
	h.record(c, models.ActionDelete, models.EntityInvoice, id.String(), "")
	respondData(c, http.StatusOK, nil)
}
