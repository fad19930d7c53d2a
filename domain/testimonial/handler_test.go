package testimonial_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Triaksa-Space/anchorpoint-web/domain/content"
	"github.com/Triaksa-Space/anchorpoint-web/domain/layout"
	"github.com/Triaksa-Space/anchorpoint-web/domain/testimonial"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms/cmstest"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/render"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID              string   `json:"_id"`
	ClientName      string   `json:"clientName,omitempty"`
	Company         string   `json:"company,omitempty"`
	TestimonialText string   `json:"testimonialText,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	ClientImage     string   `json:"clientImage,omitempty"`
}

func rating(f float64) *float64 { return &f }

func newHandler(t *testing.T, srv *cmstest.Server, opts ...testimonial.Option) *testimonial.Handler {
	t.Helper()
	client, err := cms.NewClient(cms.Config{BaseURL: srv.URL, Timeout: time.Second, PageSize: 10})
	require.NoError(t, err)
	return testimonial.NewHandler(layout.NewNavigator(true, ""), client, logger.Nop(), opts...)
}

func TestLoad_Ready(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.SetCollection(content.EntityTestimonials,
		record{ID: "t1", ClientName: "Dana Cole", Company: "Acme Retail", TestimonialText: "Opened on time.", Rating: rating(4.6),
			ClientImage: "wix:image://v1/abc_123~mv2.jpg/dana.jpg#originWidth=100&originHeight=100"},
		record{ID: "t2", TestimonialText: "Smooth move."},
	)

	section := newHandler(t, srv).Load(context.Background())

	assert.Equal(t, testimonial.StateReady, section.State)
	require.Len(t, section.Cards, 2)

	first := section.Cards[0]
	assert.Equal(t, "t1", first.ID)
	assert.Equal(t, "Dana Cole", first.Name)
	assert.Equal(t, "Dana Cole", first.ImageAlt)
	assert.Equal(t, "https://static.wixstatic.com/media/abc_123~mv2.jpg", first.ImageURL)
	assert.Equal(t, 5, testimonial.Filled(first.Stars))

	second := section.Cards[1]
	assert.Empty(t, second.Name)
	assert.Equal(t, "Client", second.ImageAlt)
	assert.Nil(t, second.Stars)
}

func TestLoad_Empty(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.SetCollection(content.EntityTestimonials)

	section := newHandler(t, srv).Load(context.Background())

	assert.Equal(t, testimonial.StateEmpty, section.State)
	assert.Equal(t, testimonial.MessageEmpty, section.Message)
	assert.Empty(t, section.Cards)
}

func TestLoad_Failed(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.FailWith(content.EntityTestimonials, http.StatusInternalServerError)

	section := newHandler(t, srv).Load(context.Background())

	assert.Equal(t, testimonial.StateFailed, section.State)
	assert.Equal(t, testimonial.MessageFailed, section.Message)
}

func TestLoad_TimeoutFails(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.SetCollection(content.EntityTestimonials, record{ID: "t1"})
	release := srv.Hold()
	defer release()

	section := newHandler(t, srv, testimonial.WithLoadTimeout(20*time.Millisecond)).Load(context.Background())

	assert.Equal(t, testimonial.StateFailed, section.State)
}

func TestLoad_RequestGoneStaysLoading(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.SetCollection(content.EntityTestimonials, record{ID: "t1"})
	release := srv.Hold()
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	section := newHandler(t, srv).Load(ctx)

	assert.Equal(t, testimonial.StateLoading, section.State)
	assert.Equal(t, testimonial.FragmentPath, section.FragmentURL)
}

func serve(t *testing.T, h *testimonial.Handler, path string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	e := echo.New()
	e.Renderer = render.MustNew()
	e.GET(layout.PathClientSuccess, h.PageHandler)
	e.GET(testimonial.FragmentPath, h.FragmentHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestPageHandler_RendersCardsInline(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.SetCollection(content.EntityTestimonials, record{ID: "t1", ClientName: "Dana", TestimonialText: "Great", Rating: rating(3.5)})

	rec, doc := serve(t, newHandler(t, srv), layout.PathClientSuccess)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Client Success", doc.Find(".nav-desktop a.is-active").Text())
	assert.Equal(t, 1, doc.Find(".testimonial-card").Length())
	assert.Equal(t, 4, doc.Find(".testimonial-card .star.is-filled").Length())
}

func TestPageHandler_ProgressiveDefersToFragment(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.SetCollection(content.EntityTestimonials, record{ID: "t1"})

	rec, doc := serve(t, newHandler(t, srv, testimonial.WithProgressive(true)), layout.PathClientSuccess)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, srv.Calls())
	section := doc.Find(".testimonials")
	state, _ := section.Attr("data-state")
	assert.Equal(t, testimonial.StateLoading, state)
	get, _ := section.Attr("hx-get")
	assert.Equal(t, testimonial.FragmentPath, get)
	assert.Equal(t, testimonial.MessageLoading, section.Find(".testimonials-message").Text())
}

func TestFragmentHandler_RendersSectionOnly(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.FailWith(content.EntityTestimonials, http.StatusBadGateway)

	rec, doc := serve(t, newHandler(t, srv), testimonial.FragmentPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, doc.Find("header").Length())
	state, _ := doc.Find(".testimonials").Attr("data-state")
	assert.Equal(t, testimonial.StateFailed, state)
	assert.Equal(t, testimonial.MessageFailed, doc.Find(".testimonials-message").Text())
}
