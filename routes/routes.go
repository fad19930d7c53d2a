package routes

import (
	"net/http"

	"github.com/Triaksa-Space/anchorpoint-web/config"
	"github.com/Triaksa-Space/anchorpoint-web/domain/contact"
	"github.com/Triaksa-Space/anchorpoint-web/domain/content"
	"github.com/Triaksa-Space/anchorpoint-web/domain/health"
	"github.com/Triaksa-Space/anchorpoint-web/domain/layout"
	"github.com/Triaksa-Space/anchorpoint-web/domain/site"
	"github.com/Triaksa-Space/anchorpoint-web/domain/testimonial"
	"github.com/Triaksa-Space/anchorpoint-web/middleware"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/apperrors"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/metrics"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/render"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/render/static"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/validation"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const contactBodyLimit = "64K"

// pageMethods are answered by every page route. HEAD is listed explicitly so
// it never falls through to the catch-all redirect.
var pageMethods = []string{http.MethodGet, http.MethodHead}

// Deps are the collaborators the route table is built from.
type Deps struct {
	Config    *config.Config
	Log       logger.Logger
	Lister    cms.Lister
	Submitter contact.Submitter
	Limiter   middleware.LimitStore
	Metrics   *metrics.Metrics
	Health    *health.Handler
}

// New builds the echo instance with renderer, validator, error handling,
// global middleware and the route table.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	nav := layout.NewNavigator(d.Config.Site.ExtendedPages, d.Config.Site.BaseURL)
	pages := site.NewHandler(nav)

	e.Renderer = render.MustNew()
	e.Validator = validation.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(d.Log, pages.ErrorPage)

	e.Use(otelecho.Middleware(logger.DefaultServiceName))
	e.Use(logger.RequestLoggerMiddleware(d.Log))
	e.Use(logger.RecoveryMiddleware(d.Log))
	e.Use(d.Metrics.Middleware())
	e.Use(echomw.Secure())

	RegisterRoutes(e, d, nav, pages)
	return e
}

func RegisterRoutes(e *echo.Echo, d Deps, nav *layout.Navigator, pages *site.Handler) {
	// Site pages
	e.Match(pageMethods, layout.PathHome, pages.HomeHandler)
	e.Match(pageMethods, layout.PathServices, pages.ServicesHandler)

	contactHandler := contact.NewHandler(nav, d.Submitter, d.Metrics, d.Log)
	e.Match(pageMethods, layout.PathContact, contactHandler.FormHandler)
	submitMiddleware := []echo.MiddlewareFunc{echomw.BodyLimit(contactBodyLimit)}
	if d.Limiter != nil {
		submitMiddleware = append(submitMiddleware, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			Store: d.Limiter,
			Log:   d.Log,
			Code:  apperrors.ErrCodeContactLimitExceeded,
		}))
	}
	e.POST(layout.PathContact, contactHandler.SubmitHandler, submitMiddleware...)

	if nav.ExtendedPages() {
		e.Match(pageMethods, layout.PathAbout, pages.AboutHandler)

		testimonials := testimonial.NewHandler(nav, d.Lister, d.Log,
			testimonial.WithLoadTimeout(d.Config.PageView.LoadTimeout),
			testimonial.WithProgressive(d.Config.Site.ProgressiveSections),
		)
		e.Match(pageMethods, layout.PathClientSuccess, testimonials.PageHandler)
		e.Match(pageMethods, testimonial.FragmentPath, testimonials.FragmentHandler)
	}

	// Content API
	contentHandler := content.NewHandler(d.Lister, d.Log)
	api := e.Group("/api/content")
	api.GET("", contentHandler.TypesHandler)
	api.GET("/:entityType", contentHandler.ListHandler)
	api.GET("/"+content.EntityServiceCategories+"/active", contentHandler.ActiveCategoriesHandler)

	// Operational
	if d.Health != nil {
		e.GET("/health", d.Health.HealthHandler)
		e.GET("/health/live", d.Health.LivenessHandler)
		e.GET("/health/ready", d.Health.ReadinessHandler)
		e.GET("/health/stats", d.Health.StatsHandler)
	}
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}
	e.StaticFS("/static", static.FS)

	// Everything else goes home.
	e.Any("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, layout.PathHome)
	})
}
