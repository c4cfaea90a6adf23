package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/sma-adp-views/internal/service"
)

func newMetricsRouter(h *MetricsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/metrics", h.Prometheus)
	return r
}

func TestMetricsHandlerReady(t *testing.T) {
	ok := ReadinessCheck{Name: "postgres", Check: func(context.Context) error { return nil }}
	r := newMetricsRouter(NewMetricsHandler(service.NewMetricsService(), ok))

	assert.Equal(t, http.StatusOK, doGet(r, "/ready", nil).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/metrics", nil).Code)
}

func TestMetricsHandlerNotReady(t *testing.T) {
	down := ReadinessCheck{Name: "redis", Check: func(context.Context) error { return errors.New("dial tcp: refused") }}
	r := newMetricsRouter(NewMetricsHandler(nil, down))

	rec := doGet(r, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis")
	assert.Equal(t, http.StatusServiceUnavailable, doGet(r, "/metrics", nil).Code)
}
