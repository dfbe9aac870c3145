package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apprepair "github.com/playbase/backend/internal/application/repair"
)

// RepairHandler handles repair endpoints
type RepairHandler struct {
	BaseHandler
	service *apprepair.RepairService
}

// NewRepairHandler creates a repair handler
func NewRepairHandler(service *apprepair.RepairService, logger *zap.Logger, defaultLanguage string) *RepairHandler {
	return &RepairHandler{
		BaseHandler: NewBaseHandler(logger, defaultLanguage),
		service:     service,
	}
}

// Create handles POST /api/v1/repairs
func (h *RepairHandler) Create(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	var req apprepair.CreateRepairRequest
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

// Get handles GET /api/v1/repairs/:id
func (h *RepairHandler) Get(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	repairID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), userID, h.isAdmin(c), repairID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByNumber handles GET /api/v1/repairs/number/:number
func (h *RepairHandler) GetByNumber(c *gin.Context) {
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

// List handles GET /api/v1/repairs. Clients see their own repairs,
// administrators see everything.
func (h *RepairHandler) List(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	var filter apprepair.RepairListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	repairs, total, err := h.service.List(c.Request.Context(), userID, h.isAdmin(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, repairs, total, filter.Page, filter.PageSize)
}

// UpdateStatus handles PATCH /api/v1/admin/repairs/:id/status
func (h *RepairHandler) UpdateStatus(c *gin.Context) {
	adminID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	repairID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req apprepair.UpdateRepairStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), adminID, repairID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AssignTechnician handles PATCH /api/v1/admin/repairs/:id/technician
func (h *RepairHandler) AssignTechnician(c *gin.Context) {
	repairID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req apprepair.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.service.AssignTechnician(c.Request.Context(), repairID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetEstimatedValue handles PATCH /api/v1/admin/repairs/:id/estimated-value
func (h *RepairHandler) SetEstimatedValue(c *gin.Context) {
	repairID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req apprepair.SetEstimatedValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.service.SetEstimatedValue(c.Request.Context(), repairID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
