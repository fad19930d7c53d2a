package site

import (
	"net/http"

	"github.com/Triaksa-Space/anchorpoint-web/domain/layout"
	"github.com/labstack/echo/v4"
)

// Handler renders the static pages.
type Handler struct {
	nav *layout.Navigator
}

func NewHandler(nav *layout.Navigator) *Handler {
	return &Handler{nav: nav}
}

func (h *Handler) HomeHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "home", h.nav.Page(layout.PathHome,
		"Anchor Point Group | Streamlining Operations, Delivering Results",
		"Retail, commercial, and warehouse operations consulting: layout, fixtures, logistics, staffing, and software.",
		Home,
	))
}

func (h *Handler) ServicesHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "services", h.nav.Page(layout.PathServices,
		"Services | Anchor Point Group",
		"Retail operations, commercial solutions, and warehouse management from planning to implementation.",
		Services,
	))
}

func (h *Handler) AboutHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "about", h.nav.Page(layout.PathAbout,
		"About | Anchor Point Group",
		"Anchor Point Group turns the chaos of growth into organized, efficient operations.",
		About,
	))
}

// ErrorBody is the body of the generic error page.
type ErrorBody struct {
	Status  int
	Message string
}

// ErrorPage renders the generic error page inside the layout. It satisfies
// apperrors.ErrorPageFunc.
func (h *Handler) ErrorPage(c echo.Context, status int, message string) error {
	return c.Render(status, "error", h.nav.Page(c.Request().URL.Path,
		http.StatusText(status)+" | Anchor Point Group",
		"",
		ErrorBody{Status: status, Message: message},
	))
}
