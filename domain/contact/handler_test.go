package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Triaksa-Space/anchorpoint-web/domain/layout"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/apperrors"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/metrics"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/render"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	mu    sync.Mutex
	subs  []Submission
	err   error
	ctxOK bool
}

func (s *recordingSubmitter) Name() string { return "recording" }

func (s *recordingSubmitter) Submit(ctx context.Context, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
	_, s.ctxOK = ctx.Deadline()
	return s.err
}

func (s *recordingSubmitter) submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Submission(nil), s.subs...)
}

func setupContact(t *testing.T, sub Submitter) (*echo.Echo, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	h := NewHandler(layout.NewNavigator(true, ""), sub, m, logger.Nop())
	h.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	e := echo.New()
	e.Renderer = render.MustNew()
	e.Validator = validation.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Nop(), nil)
	e.Use(logger.RequestLoggerMiddleware(logger.Nop()))
	e.GET(layout.PathContact, h.FormHandler)
	e.POST(layout.PathContact, h.SubmitHandler)
	return e, m
}

func TestSubmitHandler_RecordsSubmissionForEveryTransport(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: logger.LevelInfo, Environment: "production", Output: &buf})

	sub := &recordingSubmitter{}
	h := NewHandler(layout.NewNavigator(true, ""), sub, nil, log)
	e := echo.New()
	e.Renderer = render.MustNew()
	e.Validator = validation.New()
	e.POST(layout.PathContact, h.SubmitHandler)

	rec := post(e, validForm(), false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sub.submissions(), 1)

	var entry map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var candidate map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &candidate))
		if candidate["message"] == "Contact form submitted" {
			entry = candidate
		}
	}
	require.NotNil(t, entry, buf.String())
	assert.Equal(t, "Dana Cole", entry["name"])
	assert.Equal(t, "dana@example.com", entry["email"])
	assert.Equal(t, "Acme Retail", entry["company"])
	assert.Equal(t, "warehouse", entry["service_type"])
	assert.Equal(t, "recording", entry["transport"])
}

func validForm() url.Values {
	return url.Values{
		"name":        {"  Dana Cole  "},
		"email":       {"dana@example.com"},
		"phone":       {"555-0100"},
		"company":     {"Acme Retail"},
		"serviceType": {"warehouse"},
		"message":     {"We are opening a second distribution center."},
	}
}

func post(e *echo.Echo, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, layout.PathContact, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

func contactCount(t *testing.T, m *metrics.Metrics, service, outcome string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "anchorpoint_contact_submissions_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["service_type"] == service && labels["outcome"] == outcome {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestFormHandler_BlankForm(t *testing.T) {
	e, _ := setupContact(t, &recordingSubmitter{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, layout.PathContact, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, "Contact", doc.Find(".nav-desktop a.is-active").Text())
	assert.Equal(t, 1, doc.Find("#contact-card form").Length())
	assert.Zero(t, doc.Find(".confirmation").Length())
	assert.Zero(t, doc.Find(`meta[http-equiv="refresh"]`).Length())
	assert.Equal(t, len(ServiceOptions)+1, doc.Find("#serviceType option").Length())
}

func TestSubmitHandler_ConfirmsAndDelivers(t *testing.T) {
	sub := &recordingSubmitter{}
	e, m := setupContact(t, sub)

	rec := post(e, validForm(), false)

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, 1, doc.Find("#contact-card .confirmation").Length())
	assert.Zero(t, doc.Find("#contact-card form").Length())
	refresh, ok := doc.Find(`meta[http-equiv="refresh"]`).Attr("content")
	require.True(t, ok)
	assert.Equal(t, "3;url=/contact", refresh)

	subs := sub.submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, "Dana Cole", subs[0].Name)
	assert.Equal(t, "warehouse", subs[0].ServiceType)
	assert.NotEmpty(t, subs[0].RequestID)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), subs[0].ReceivedAt)
	assert.True(t, sub.ctxOK)

	assert.Equal(t, 1.0, contactCount(t, m, "warehouse", outcomeDelivered))
}

func TestSubmitHandler_HTMXGetsCardOnly(t *testing.T) {
	e, _ := setupContact(t, &recordingSubmitter{})

	rec := post(e, validForm(), true)

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Zero(t, doc.Find("header").Length())
	confirmation := doc.Find("#contact-card .confirmation")
	require.Equal(t, 1, confirmation.Length())
	trigger, _ := confirmation.Attr("hx-trigger")
	assert.Equal(t, "load delay:3000ms", trigger)
}

func TestSubmitHandler_DeliveryFailureStillConfirms(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("smtp down")}
	e, m := setupContact(t, sub)

	rec := post(e, validForm(), false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, parse(t, rec).Find(".confirmation").Length())
	assert.Len(t, sub.submissions(), 1)
	assert.Equal(t, 1.0, contactCount(t, m, "warehouse", outcomeDeliveryFailed))
}

func TestSubmitHandler_InvalidKeepsValues(t *testing.T) {
	sub := &recordingSubmitter{}
	e, m := setupContact(t, sub)

	form := validForm()
	form.Set("email", "not-an-email")
	form.Set("serviceType", "space-travel")
	form.Del("message")

	rec := post(e, form, false)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, sub.submissions())

	doc := parse(t, rec)
	assert.Zero(t, doc.Find(".confirmation").Length())
	name, _ := doc.Find("#name").Attr("value")
	assert.Equal(t, "Dana Cole", name)
	email, _ := doc.Find("#email").Attr("value")
	assert.Equal(t, "not-an-email", email)

	var errs []string
	doc.Find(".field-error").Each(func(_ int, s *goquery.Selection) {
		errs = append(errs, s.Text())
	})
	assert.ElementsMatch(t, []string{
		"Please enter a valid email address.",
		"Please select a service type.",
		"Project details is required.",
	}, errs)

	assert.Equal(t, 1.0, contactCount(t, m, "unknown", outcomeInvalid))
}

func TestSubmitHandler_InvalidSelectKeepsChoice(t *testing.T) {
	e, _ := setupContact(t, &recordingSubmitter{})

	form := validForm()
	form.Set("name", "   ")

	rec := post(e, form, true)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	doc := parse(t, rec)
	selected, _ := doc.Find("#serviceType option[selected]").Attr("value")
	assert.Equal(t, "warehouse", selected)
	assert.Equal(t, "Full name is required.", doc.Find(".field-error").Text())
}

func TestSubmitHandler_MetricsIgnoreNilRegistry(t *testing.T) {
	h := NewHandler(layout.NewNavigator(true, ""), &recordingSubmitter{}, nil, logger.Nop())
	e := echo.New()
	e.Renderer = render.MustNew()
	e.Validator = validation.New()
	e.POST(layout.PathContact, h.SubmitHandler)

	rec := post(e, validForm(), false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServiceLabelValue(t *testing.T) {
	assert.Equal(t, "retail", serviceLabelValue("retail"))
	assert.Equal(t, "unknown", serviceLabelValue("<script>"))
}
