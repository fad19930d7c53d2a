package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Level:       logger.LevelInfo,
		Environment: "production",
		Version:     "1.2.3",
		Output:      &buf,
	})

	log.WithComponent("cms").Info("listing fetched", logger.EntityType("clienttestimonials"), logger.Count(4))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "listing fetched", entry["message"])
	assert.Equal(t, "anchorpoint-web", entry["service"])
	assert.Equal(t, "1.2.3", entry["version"])
	assert.Equal(t, "cms", entry["component"])
	assert.Equal(t, "clienttestimonials", entry["entity_type"])
	assert.EqualValues(t, 4, entry["count"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: logger.LevelWarn, Environment: "production", Output: &buf})

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel(" WARN "))
	assert.Equal(t, zerolog.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verbose"))
}

func TestWithContext_AddsRequestAndRoute(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Environment: "production", Output: &buf})

	ctx := logger.WithRouteContext(logger.WithRequestIDContext(context.Background(), "req-1"), "/services")
	log.WithContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"route":"/services"`)
}

func TestRequestLoggerMiddleware_AssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Environment: "production", Output: &buf})

	e := echo.New()
	e.Use(logger.RequestLoggerMiddleware(log))

	var seenRoute, seenID string
	e.GET("/services", func(c echo.Context) error {
		seenRoute = logger.GetRoute(c.Request().Context())
		seenID = logger.GetRequestID(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	id := rec.Header().Get(logger.RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seenID)
	assert.Equal(t, "/services", seenRoute)
	assert.Contains(t, buf.String(), "Request completed")
	assert.Contains(t, buf.String(), id)
}

func TestRequestLoggerMiddleware_KeepsIncomingRequestID(t *testing.T) {
	e := echo.New()
	e.Use(logger.RequestLoggerMiddleware(logger.Nop()))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(logger.RequestIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get(logger.RequestIDHeader))
}

func TestRecoveryMiddleware_TurnsPanicInto500(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Environment: "production", Output: &buf})

	e := echo.New()
	e.Use(logger.RecoveryMiddleware(log))
	e.GET("/", func(c echo.Context) error { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(buf.String(), "Panic recovered"))
}
