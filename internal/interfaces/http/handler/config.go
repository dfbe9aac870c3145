package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcatalog "github.com/playbase/backend/internal/application/catalog"
)

// ConfigHandler handles saved PC and PS5 controller configuration endpoints
type ConfigHandler struct {
	BaseHandler
	service *appcatalog.ConfigService
}

// NewConfigHandler creates a saved configuration handler
func NewConfigHandler(service *appcatalog.ConfigService, logger *zap.Logger, defaultLanguage string) *ConfigHandler {
	return &ConfigHandler{
		BaseHandler: NewBaseHandler(logger, defaultLanguage),
		service:     service,
	}
}

// Save handles POST /api/v1/configs
func (h *ConfigHandler) Save(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	var req appcatalog.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /api/v1/configs/:id
func (h *ConfigHandler) Get(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /api/v1/configs with an optional kind filter (PC or PS5)
func (h *ConfigHandler) List(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	resp, err := h.service.List(c.Request.Context(), userID, c.Query("kind"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /api/v1/configs/:id
func (h *ConfigHandler) Delete(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
