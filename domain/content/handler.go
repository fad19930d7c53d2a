package content

import (
	"encoding/json"
	"net/http"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/apperrors"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/labstack/echo/v4"
)

// ListingResponse is the operator view of one collection.
type ListingResponse struct {
	EntityType string            `json:"entity_type"`
	Count      int               `json:"count"`
	Items      []json.RawMessage `json:"items"`
}

// Handler serves read-only listings straight from the content store.
type Handler struct {
	lister cms.Lister
	log    logger.Logger
}

func NewHandler(lister cms.Lister, log logger.Logger) *Handler {
	return &Handler{lister: lister, log: log.WithComponent("content")}
}

// ListHandler returns every record of :entityType. Only known entity types are
// forwarded to the store.
func (h *Handler) ListHandler(c echo.Context) error {
	entityType := c.Param("entityType")
	if !KnownEntityTypes[entityType] {
		return apperrors.NewNotFound(apperrors.ErrCodeEntityTypeNotFound, "Unknown entity type").
			WithDetail(entityType)
	}

	listing, err := h.lister.ListAll(c.Request().Context(), entityType)
	if err != nil {
		h.log.WithContext(c.Request().Context()).Warn("Listing failed",
			logger.EntityType(entityType),
			logger.Cause(string(cms.CauseOf(err))),
			logger.Err(err),
		)
		return apperrors.FromFetchError(err)
	}

	items := listing.Items
	if items == nil {
		items = []json.RawMessage{}
	}
	return apperrors.RespondWithSuccess(c, ListingResponse{
		EntityType: entityType,
		Count:      len(items),
		Items:      items,
	})
}

// ActiveCategoriesHandler returns the active service categories in display
// order, decoded and sanitized.
func (h *Handler) ActiveCategoriesHandler(c echo.Context) error {
	ctx := c.Request().Context()
	categories, err := cms.ListAs[ServiceCategory](ctx, h.lister, EntityServiceCategories)
	if err != nil {
		h.log.WithContext(ctx).Warn("Category listing failed",
			logger.EntityType(EntityServiceCategories),
			logger.Cause(string(cms.CauseOf(err))),
			logger.Err(err),
		)
		return apperrors.FromFetchError(err)
	}

	active := ActiveCategories(categories)
	for i := range active {
		if active[i].Description != nil {
			clean := Sanitize(*active[i].Description)
			active[i].Description = &clean
		}
	}
	return apperrors.RespondWithSuccess(c, map[string]any{
		"count": len(active),
		"items": active,
	})
}

// TypesHandler lists the entity types the listing endpoint accepts.
func (h *Handler) TypesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"entity_types": {EntityTestimonials, EntityServiceCategories, EntityServices},
	})
}
