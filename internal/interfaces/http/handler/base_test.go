package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/playbase/backend/internal/domain/shared"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewBaseHandler(zap.NewNop(), "sq")

	serve := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
		h.HandleError(c, err)
		return w
	}

	t.Run("not found maps to 404", func(t *testing.T) {
		w := serve(shared.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("concurrent modification maps to 409", func(t *testing.T) {
		w := serve(shared.NewDomainError("CONCURRENT_MODIFICATION", "order was modified concurrently"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid state maps to 422", func(t *testing.T) {
		w := serve(shared.NewDomainError("INVALID_STATE", "cannot cancel a delivered order"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown error maps to 500 without leaking detail", func(t *testing.T) {
		w := serve(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestLanguageResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewBaseHandler(zap.NewNop(), "sq")

	resolve := func(target, acceptLanguage string) string {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		if acceptLanguage != "" {
			c.Request.Header.Set("Accept-Language", acceptLanguage)
		}
		return h.language(c)
	}

	t.Run("query parameter wins", func(t *testing.T) {
		assert.Equal(t, "en", resolve("/orders?lang=en", "sq"))
	})

	t.Run("invalid query parameter is ignored", func(t *testing.T) {
		assert.Equal(t, "en", resolve("/orders?lang=de", "en-GB,en;q=0.9"))
	})

	t.Run("accept-language header is honoured", func(t *testing.T) {
		assert.Equal(t, "sq", resolve("/orders", "sq-AL,sq;q=0.9,en;q=0.8"))
	})

	t.Run("falls back to default", func(t *testing.T) {
		assert.Equal(t, "sq", resolve("/orders", "de-DE,de;q=0.9"))
	})
}
