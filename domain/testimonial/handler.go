package testimonial

import (
	"context"
	"net/http"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/domain/content"
	"github.com/Triaksa-Space/anchorpoint-web/domain/layout"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/pageview"
	"github.com/labstack/echo/v4"
)

// FragmentPath serves the testimonials section on its own.
const FragmentPath = layout.PathClientSuccess + "/testimonials"

// Handler renders the client success page and its testimonials fragment.
type Handler struct {
	nav         *layout.Navigator
	lister      cms.Lister
	log         logger.Logger
	loadTimeout time.Duration
	progressive bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithLoadTimeout bounds each testimonials load.
func WithLoadTimeout(d time.Duration) Option {
	return func(h *Handler) { h.loadTimeout = d }
}

// WithProgressive makes the page render the loading state and let the
// browser fetch the section from FragmentPath.
func WithProgressive(on bool) Option {
	return func(h *Handler) { h.progressive = on }
}

func NewHandler(nav *layout.Navigator, lister cms.Lister, log logger.Logger, opts ...Option) *Handler {
	h := &Handler{nav: nav, lister: lister, log: log.WithComponent("testimonial")}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PageHandler renders the full client success page.
func (h *Handler) PageHandler(c echo.Context) error {
	body := page
	if h.progressive {
		body.Testimonials = Section{State: StateLoading, Message: MessageLoading, FragmentURL: FragmentPath}
	} else {
		body.Testimonials = h.Load(c.Request().Context())
	}

	return c.Render(http.StatusOK, "client-success", h.nav.Page(layout.PathClientSuccess,
		"Client Success | Anchor Point Group",
		"Client testimonials and results from Anchor Point Group projects.",
		body,
	))
}

// FragmentHandler renders only the testimonials section in a terminal state.
func (h *Handler) FragmentHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "client-success:testimonials", h.Load(c.Request().Context()))
}

// Load mounts one testimonials view for ctx, waits for it to settle, and
// maps the outcome to a section. The view is disposed before returning.
func (h *Handler) Load(ctx context.Context) Section {
	view := pageview.New[content.Testimonial](pageview.WithTimeout(h.loadTimeout))
	defer view.Dispose()

	if err := view.Mount(ctx, h.fetch); err != nil {
		h.log.WithContext(ctx).Error("Testimonials mount failed", err)
		return Section{State: StateFailed, Message: MessageFailed}
	}
	return h.section(ctx, view.Wait(ctx))
}

func (h *Handler) fetch(ctx context.Context) ([]content.Testimonial, error) {
	return cms.ListAs[content.Testimonial](ctx, h.lister, content.EntityTestimonials)
}

func (h *Handler) section(ctx context.Context, snap pageview.Snapshot[content.Testimonial]) Section {
	switch snap.Status {
	case pageview.StatusFailed:
		h.log.WithContext(ctx).Warn("Testimonials unavailable",
			logger.EntityType(content.EntityTestimonials),
			logger.Cause(string(cms.CauseOf(snap.Err))),
			logger.Err(snap.Err),
		)
		return Section{State: StateFailed, Message: MessageFailed}
	case pageview.StatusReady:
		if snap.Empty() {
			return Section{State: StateEmpty, Message: MessageEmpty}
		}
		cards := make([]Card, 0, len(snap.Items))
		for _, t := range snap.Items {
			cards = append(cards, NewCard(t))
		}
		return Section{State: StateReady, Cards: cards}
	default:
		// The request ended before the load settled.
		return Section{State: StateLoading, Message: MessageLoading, FragmentURL: FragmentPath}
	}
}
