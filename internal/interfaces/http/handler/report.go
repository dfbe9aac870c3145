package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appreport "github.com/playbase/backend/internal/application/report"
)

// ReportHandler serves admin analytics endpoints
type ReportHandler struct {
	BaseHandler
	service *appreport.ReportService
}

// NewReportHandler creates a report handler
func NewReportHandler(service *appreport.ReportService, logger *zap.Logger, defaultLanguage string) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger, defaultLanguage),
		service:     service,
	}
}

// Dashboard handles GET /api/v1/admin/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	var filter appreport.DashboardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.service.Dashboard(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
