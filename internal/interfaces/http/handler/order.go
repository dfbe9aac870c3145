package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appordering "github.com/playbase/backend/internal/application/ordering"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	service *appordering.OrderService
}

// NewOrderHandler creates an order handler
func NewOrderHandler(service *appordering.OrderService, logger *zap.Logger, defaultLanguage string) *OrderHandler {
	return &OrderHandler{
		BaseHandler: NewBaseHandler(logger, defaultLanguage),
		service:     service,
	}
}

// Create handles POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	var req appordering.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}
	if req.Language == "" {
		req.Language = h.language(c)
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	orderID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), userID, h.isAdmin(c), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByNumber handles GET /api/v1/orders/number/:number
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	resp, err := h.service.GetByNumber(c.Request.Context(), userID, h.isAdmin(c), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetInvoice handles GET /api/v1/orders/:id/invoice
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	orderID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetInvoice(c.Request.Context(), userID, h.isAdmin(c), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /api/v1/orders. Clients see their own orders,
// administrators see everything.
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	var filter appordering.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	orders, total, err := h.service.List(c.Request.Context(), userID, h.isAdmin(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, orders, total, filter.Page, filter.PageSize)
}

// UpdateStatus handles PATCH /api/v1/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	adminID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	orderID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req appordering.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), adminID, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
