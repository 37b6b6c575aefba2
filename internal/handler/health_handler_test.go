package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"talentsync/internal/handler"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		pinger stubPinger
		call   func(*handler.HealthHandler, *gin.Context)
		status int
	}{
		{"liveness", stubPinger{err: errors.New("down")}, (*handler.HealthHandler).Liveness, http.StatusOK},
		{"readiness ok", stubPinger{}, (*handler.HealthHandler).Readiness, http.StatusOK},
		{"readiness db down", stubPinger{err: errors.New("down")}, (*handler.HealthHandler).Readiness, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)

			tt.call(handler.NewHealthHandler(tt.pinger), c)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
