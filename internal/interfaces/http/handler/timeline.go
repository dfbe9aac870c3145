package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apptimeline "github.com/playbase/backend/internal/application/timeline"
)

// TimelineHandler serves order and repair history timelines
type TimelineHandler struct {
	BaseHandler
	service *apptimeline.TimelineService
}

// NewTimelineHandler creates a timeline handler
func NewTimelineHandler(service *apptimeline.TimelineService, logger *zap.Logger, defaultLanguage string) *TimelineHandler {
	return &TimelineHandler{
		BaseHandler: NewBaseHandler(logger, defaultLanguage),
		service:     service,
	}
}

// ForOrder handles GET /api/v1/orders/:id/timeline
func (h *TimelineHandler) ForOrder(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	orderID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.service.ForOrder(c.Request.Context(), userID, h.isAdmin(c), orderID, h.language(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// ForRepair handles GET /api/v1/repairs/:id/timeline
func (h *TimelineHandler) ForRepair(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	repairID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.service.ForRepair(c.Request.Context(), userID, h.isAdmin(c), repairID, h.language(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}
