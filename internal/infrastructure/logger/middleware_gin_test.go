package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.POST("/webhooks/cakto", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	t.Run("generates request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhooks/cakto", nil))
		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	})

	t.Run("keeps inbound request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/cakto", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
	})

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 2)
	last := entries[1]
	assert.Equal(t, zap.WarnLevel, last.Level)
	assert.Equal(t, "req-42", last.ContextMap()["request_id"])
	assert.Equal(t, "/webhooks/cakto", last.ContextMap()["route"])
	assert.EqualValues(t, http.StatusNotFound, last.ContextMap()["status"])
}

func TestNew(t *testing.T) {
	_, err := New("verbose")
	assert.Error(t, err)

	l, err := New("")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}
