package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/interfaces/http/response"
)

func performJSON(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestSuccessWritesPayload(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"ok": true})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestErrorUsesAppErrorStatusAndCode(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		response.Error(c, domainerrors.NotFound("business not found"))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"ERR_NOT_FOUND","message":"business not found"}`, w.Body.String())
}

func TestErrorWrapsPlainErrorsAsInternal(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		response.Error(c, assert.AnError)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeInternal)
}
