package contact

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/domain/layout"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/apperrors"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/metrics"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/validation"
	"github.com/labstack/echo/v4"
)

const (
	defaultDeliveryTimeout = 10 * time.Second

	outcomeDelivered      = "delivered"
	outcomeDeliveryFailed = "delivery_failed"
	outcomeInvalid        = "invalid"

	cardFragment = "contact:contact-card"
)

// Handler serves the contact page and accepts submissions.
type Handler struct {
	nav             *layout.Navigator
	submitter       Submitter
	metrics         *metrics.Metrics
	log             logger.Logger
	deliveryTimeout time.Duration
	now             func() time.Time
}

func NewHandler(nav *layout.Navigator, submitter Submitter, m *metrics.Metrics, log logger.Logger) *Handler {
	return &Handler{
		nav:             nav,
		submitter:       submitter,
		metrics:         m,
		log:             log.WithComponent("contact"),
		deliveryTimeout: defaultDeliveryTimeout,
		now:             time.Now,
	}
}

// FormHandler renders the blank form.
func (h *Handler) FormHandler(c echo.Context) error {
	return h.render(c, http.StatusOK, newView())
}

// SubmitHandler validates a submission, hands it to the submitter, and
// renders the confirmation in the same response. Invalid input re-renders
// the form with the entered values. Delivery failures are logged only.
func (h *Handler) SubmitHandler(c echo.Context) error {
	var form Form
	if err := c.Bind(&form); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid form submission")
	}
	form.Normalize()

	view := newView()
	if err := c.Validate(&form); err != nil {
		violations := validation.Violations(err)
		if violations == nil {
			return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Form validation failed", err)
		}
		view.Form = form
		view.Errors = Messages(violations)
		h.metrics.ContactSubmitted(serviceLabelValue(form.ServiceType), outcomeInvalid)
		return h.render(c, http.StatusUnprocessableEntity, view)
	}

	sub := Submission{
		Form:       form,
		ReceivedAt: h.now(),
		RemoteIP:   c.RealIP(),
		RequestID:  logger.GetRequestIDFromContext(c),
	}

	h.log.WithContext(c.Request().Context()).Info("Contact form submitted",
		append(sub.LogFields(), logger.Transport(h.submitter.Name()))...)

	// Delivery outlives a visitor who navigates away mid-request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), h.deliveryTimeout)
	defer cancel()

	outcome := outcomeDelivered
	if err := h.submitter.Submit(ctx, sub); err != nil {
		outcome = outcomeDeliveryFailed
		h.log.WithContext(c.Request().Context()).Error("Contact delivery failed", err,
			logger.Transport(h.submitter.Name()),
			logger.String("service_type", sub.ServiceType),
		)
	}
	h.metrics.ContactSubmitted(sub.ServiceType, outcome)

	view.Submitted = true
	return h.render(c, http.StatusOK, view)
}

func (h *Handler) render(c echo.Context, status int, view View) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		return c.Render(status, cardFragment, view)
	}

	page := h.nav.Page(layout.PathContact,
		"Contact | Anchor Point Group",
		"Tell us about your retail, commercial, or warehouse project.",
		view,
	)
	if view.Submitted {
		page.Refresh = fmt.Sprintf("%d;url=%s", view.ResetAfterSeconds(), layout.PathContact)
	}
	return c.Render(status, "contact", page)
}

// serviceLabelValue keeps metric labels bounded to the known service types.
func serviceLabelValue(v string) string {
	for _, o := range ServiceOptions {
		if o.Value == v {
			return v
		}
	}
	return "unknown"
}
