package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limitedError struct{}

func (limitedError) Error() string   { return "slow down" }
func (limitedError) StatusCode() int { return http.StatusTooManyRequests }

func TestMiddleware_RecordsMatchedRoute(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/services", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(echo.Context) error { return fmt.Errorf("wrapped: %w", limitedError{}) })
	e.GET("/missing", func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })
	e.GET("/broken", func(echo.Context) error { return errors.New("plain") })

	for _, path := range []string{"/services", "/services", "/boom", "/missing", "/broken"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/services", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/boom", "429")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/missing", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/broken", "500")))
}

func TestObserveCMSFetchAndContact(t *testing.T) {
	m := New()
	m.ObserveCMSFetch("Testimonials", "ok", 20*time.Millisecond)
	m.ObserveCMSFetch("Testimonials", "unauthorized", time.Millisecond)
	m.ContactSubmitted("retail", "delivered")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cmsFetches.WithLabelValues("Testimonials", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cmsFetches.WithLabelValues("Testimonials", "unauthorized")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contactSubmissions.WithLabelValues("retail", "delivered")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.cmsDuration))
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.ContactSubmitted("warehouse", "invalid")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(),
		`anchorpoint_contact_submissions_total{outcome="invalid",service_type="warehouse"} 1`))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCMSFetch("Testimonials", "ok", time.Second)
		m.ContactSubmitted("retail", "delivered")
	})
	assert.Nil(t, m.Registry())

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
