package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func send(fn func(c *gin.Context)) (*httptest.ResponseRecorder, Body) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	var body Body
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name       string
		send       func(c *gin.Context)
		wantStatus int
		wantCode   string
		retryable  bool
	}{
		{"validation", func(c *gin.Context) { ValidationFailed(c, "email is required") }, http.StatusBadRequest, CodeValidationFailed, false},
		{"not found", func(c *gin.Context) { NotFound(c, "session not found") }, http.StatusNotFound, CodeNotFound, false},
		{"conflict", func(c *gin.Context) { Conflict(c, "tier_unavailable", "sold out") }, http.StatusConflict, "tier_unavailable", false},
		{"unavailable", func(c *gin.Context) { ServiceUnavailable(c, CodeSubmissionFailed, "try again") }, http.StatusServiceUnavailable, CodeSubmissionFailed, true},
		{"internal", func(c *gin.Context) { Internal(c, "boom") }, http.StatusInternalServerError, CodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := send(tt.send)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.retryable, body.Retryable)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestOK(t *testing.T) {
	w, body := send(func(c *gin.Context) { OK(c, map[string]int{"n": 1}) })

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Empty(t, body.Code)
	assert.JSONEq(t, `{"success":true,"data":{"n":1}}`, w.Body.String())
}
