package controllers

import (
	"log/slog"
	"net/http"

	"eventcomposer/internal/delivery/http/helpers"
	"eventcomposer/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Catalog domain.CatalogService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, catalog domain.CatalogService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Catalog: catalog,
	}
}

// EventSuccessResponse is the success response envelope for GET /events/{eventID}.
type EventSuccessResponse struct {
	Data  *domain.EventDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// CatalogPage is one page of catalog items.
type CatalogPage struct {
	Items      []domain.ContentItem   `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// CatalogSuccessResponse is the success response envelope for GET /catalog/{category}.
type CatalogSuccessResponse struct {
	Data  *CatalogPage      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEvent godoc
// @Summary Get a created event
// @Description Returns the persisted event and the owner recorded in content ownership.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	detail, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// ListCatalog godoc
// @Summary List the selectable items of a category
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category" Enums(artists, venues, resources, brands, communities)
// @Param q query string false "Case-insensitive match on name, description or location"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 200)" default(50)
// @Success 200 {object} controllers.CatalogSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /catalog/{category} [get]
func (c *EventController) ListCatalog(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	items, err := c.Catalog.Search(r.Context(), category, r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	page, meta := helpers.Paginate(items, helpers.ParsePagination(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogPage{Items: page, Pagination: meta})
}
