package health

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/domain/content"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version,omitempty"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
}

// StatsResponse represents system statistics
type StatsResponse struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	Uptime       string `json:"uptime,omitempty"`
}

// CheckFunc probes one dependency.
type CheckFunc func(ctx context.Context) error

type probe struct {
	check CheckFunc
	// message is reported instead of the raw error.
	message string
}

// Handler serves the health endpoints.
type Handler struct {
	version string
	probes  map[string]probe
	timeout time.Duration
	started time.Time
	now     func() time.Time
}

// Option adds a probe to a Handler.
type Option func(*Handler)

// WithCheck registers a named probe.
func WithCheck(name, failureMessage string, check CheckFunc) Option {
	return func(h *Handler) { h.probes[name] = probe{check: check, message: failureMessage} }
}

// WithCMS probes the content store by listing the testimonials collection.
func WithCMS(lister cms.Lister) Option {
	return WithCheck("cms", "Content store unreachable", func(ctx context.Context) error {
		_, err := lister.ListAll(ctx, content.EntityTestimonials)
		return err
	})
}

// WithRedis probes the shared cache. A nil client adds nothing.
func WithRedis(client *redis.Client) Option {
	return func(h *Handler) {
		if client == nil {
			return
		}
		WithCheck("redis", "Cache connection failed", func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})(h)
	}
}

func NewHandler(version string, opts ...Option) *Handler {
	h := &Handler{
		version: version,
		probes:  map[string]probe{},
		timeout: 3 * time.Second,
		started: time.Now(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// LivenessHandler handles the /health/live endpoint
// Returns 200 if the service is running (for Kubernetes liveness probe)
func (h *Handler) LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.timestamp(),
	})
}

// ReadinessHandler handles the /health/ready endpoint
// Returns 200 if the service is ready to accept traffic (for Kubernetes readiness probe)
func (h *Handler) ReadinessHandler(c echo.Context) error {
	checks, allHealthy := h.runChecks(c.Request().Context())

	status := "ok"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, ReadinessResponse{
		Status:    status,
		Timestamp: h.timestamp(),
		Checks:    checks,
	})
}

// HealthHandler handles the /health endpoint
// Returns comprehensive health information
func (h *Handler) HealthHandler(c echo.Context) error {
	checks, allHealthy := h.runChecks(c.Request().Context())

	status := "ok"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Timestamp: h.timestamp(),
		Version:   h.version,
		Checks:    checks,
	})
}

// StatsHandler handles the /health/stats endpoint
// Returns system statistics for monitoring
func (h *Handler) StatsHandler(c echo.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return c.JSON(http.StatusOK, StatsResponse{
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		MemAlloc:     m.Alloc,
		MemSys:       m.Sys,
		Uptime:       h.now().Sub(h.started).Round(time.Second).String(),
	})
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

// runChecks probes every dependency concurrently, each bounded by the handler
// timeout.
func (h *Handler) runChecks(ctx context.Context) (map[string]Check, bool) {
	names := make([]string, 0, len(h.probes))
	for name := range h.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]Check, len(names))
	done := make(chan struct{}, len(names))
	for i, name := range names {
		go func(i int, p probe) {
			results[i] = h.runCheck(ctx, p)
			done <- struct{}{}
		}(i, h.probes[name])
	}
	for range names {
		<-done
	}

	checks := make(map[string]Check, len(names))
	allHealthy := true
	for i, name := range names {
		checks[name] = results[i]
		if results[i].Status != "ok" {
			allHealthy = false
		}
	}
	return checks, allHealthy
}

func (h *Handler) runCheck(ctx context.Context, p probe) Check {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := p.check(ctx)
	latency := time.Since(start)

	if err != nil {
		return Check{
			Status:  "error",
			Message: p.message,
			Latency: latency.String(),
		}
	}

	return Check{
		Status:  "ok",
		Latency: latency.String(),
	}
}
