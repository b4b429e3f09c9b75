package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// OrderHandler handles wholesale orders in the back office
type OrderHandler struct {
	orders  *services.OrderService
	exports *services.ExportService
	activityRecorder
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *services.OrderService, exports *services.ExportService, activity *services.ActivityService) *OrderHandler {
	return &OrderHandler{orders: orders, exports: exports, activityRecorder: activityRecorder{activity}}
}

// ListOrders lists orders, newest first
// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in order number, company, country and WhatsApp"
// @Param status query string false "Order status or all"
// @Success 200 {object} models.ListResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), orderFilter(c))
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondList(c, orders, len(orders))
}

// ExportOrders downloads the filtered orders as a workbook
// @Summary Export orders
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/orders/export [get]
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), orderFilter(c))
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	buf, err := h.exports.Orders(orders)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	sendAttachment(c, exportFilename("orders"), services.XLSXContentType, buf.Bytes())
}

// GetOrder returns one order
// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} ErrorResponse
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "FETCH_FAILED")
		return
	}
	respondData(c, http.StatusOK, order)
}

// CreateOrder records an order taken by an admin
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Router /admin/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	order, _, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "CREATION_FAILED")
		return
	}
	h.record(c, models.ActionCreate, models.EntityOrder, order.ID.String(), order.OrderNumber)
	respondData(c, http.StatusCreated, order)
}

// UpdateOrderStatus moves an order through its lifecycle
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} models.Order
// @Failure 409 {object} ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	order, previous, err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	if previous != order.Status {
		h.record(c, models.ActionStatus, models.EntityOrder, order.ID.String(), string(previous)+" -> "+string(order.Status))
	}
	respondData(c, http.StatusOK, order)
}

// UpdateOrderShipping edits the shipping details and internal notes
// @Summary Update order shipping
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param shipping body models.UpdateShippingRequest true "Shipping"
// @Success 200 {object} models.Order
// @Router /admin/orders/{id}/shipping [put]
func (h *OrderHandler) UpdateOrderShipping(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateShippingRequest
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.orders.UpdateShipping(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err, "UPDATE_FAILED")
		return
	}
	h.record(c, models.ActionUpdate, models.EntityOrder, order.ID.String(), "shipping updated")
	respondData(c, http.StatusOK, order)
}

// DeleteOrder deletes an order
// @Summary Delete order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.SuccessResponse
// @Router /admin/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "DELETE_FAILED")
		return
	}
	h.record(c, models.ActionDelete, models.EntityOrder, id.String(), "")
	respondData(c, http.StatusOK, nil)
}

func orderFilter(c *gin.Context) services.OrderFilter {
	return services.OrderFilter{Search: c.Query("search"), Status: c.Query("status")}
}
