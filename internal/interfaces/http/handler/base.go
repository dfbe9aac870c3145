package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/interfaces/http/dto"
	"github.com/playbase/backend/internal/interfaces/http/middleware"
)

// errUnauthenticated is returned when a protected handler runs without an
// authenticated user on the context
var errUnauthenticated = shared.NewDomainError("UNAUTHORIZED", "authentication required")

// BaseHandler provides common response helpers for all handlers
type BaseHandler struct {
	logger          *zap.Logger
	defaultLanguage string
}

// NewBaseHandler creates a base handler
func NewBaseHandler(logger *zap.Logger, defaultLanguage string) BaseHandler {
	if defaultLanguage == "" {
		defaultLanguage = "sq"
	}
	return BaseHandler{logger: logger, defaultLanguage: defaultLanguage}
}

// Success sends a 200 response with data
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response with data
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated sends a 200 response with data and pagination meta
func (h *BaseHandler) Paginated(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// BadRequest sends a 400 response for malformed input
func (h *BaseHandler) BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeValidation, err.Error()))
}

// HandleError maps domain errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		if status >= http.StatusInternalServerError {
			h.logger.Error("unhandled domain error",
				zap.String("code", domainErr.Code),
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
		}
		c.JSON(status, dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}

	h.logger.Error("internal error",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, "internal server error"))
}

// currentUserID returns the authenticated user's ID from the request context
func (h *BaseHandler) currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.ContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// isAdmin reports whether the authenticated user is an administrator
func (h *BaseHandler) isAdmin(c *gin.Context) bool {
	return c.GetBool(middleware.ContextKeyIsAdmin)
}

// currentToken returns the raw bearer token and its expiry from the context
func (h *BaseHandler) currentToken(c *gin.Context) (string, time.Time) {
	token := c.GetString(middleware.ContextKeyToken)
	expiresAt, _ := c.Get(middleware.ContextKeyTokenExpiresAt)
	t, _ := expiresAt.(time.Time)
	return token, t
}

// language resolves the response language from the lang query parameter or
// the Accept-Language header. Only sq and en are supported.
func (h *BaseHandler) language(c *gin.Context) string {
	if lang := c.Query("lang"); lang == "sq" || lang == "en" {
		return lang
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "sq" || strings.HasPrefix(tag, "sq-") {
			return "sq"
		}
		if tag == "en" || strings.HasPrefix(tag, "en-") {
			return "en"
		}
	}
	return h.defaultLanguage
}

// parseIDParam parses a UUID path parameter
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrCodeValidation, "invalid "+name+" parameter"))
		return uuid.Nil, false
	}
	return id, true
}
