package http

import (
	"net/http"

	"eventcomposer/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// authWrap guards every route except /swagger/.
func NewRouter(
	draftController *controllers.DraftController,
	groupController *controllers.GroupController,
	eventController *controllers.EventController,
	authWrap func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /catalog/{category}", authWrap(eventController.ListCatalog))

	// Drafts
	mux.HandleFunc("POST /drafts", authWrap(draftController.CreateDraft))
	mux.HandleFunc("GET /drafts/{draftID}", authWrap(draftController.GetDraft))
	mux.HandleFunc("DELETE /drafts/{draftID}", authWrap(draftController.DiscardDraft))
	mux.HandleFunc("PUT /drafts/{draftID}/details", authWrap(draftController.UpdateDetails))
	mux.HandleFunc("POST /drafts/{draftID}/toggle", authWrap(draftController.Toggle))
	mux.HandleFunc("POST /drafts/{draftID}/apply-group", authWrap(draftController.ApplyGroup))
	mux.HandleFunc("PUT /drafts/{draftID}/gallery", authWrap(draftController.SetGallery))
	mux.HandleFunc("POST /drafts/{draftID}/poster", authWrap(draftController.AttachPoster))
	mux.HandleFunc("POST /drafts/{draftID}/submit", authWrap(draftController.Submit))

	// Slots
	mux.HandleFunc("POST /drafts/{draftID}/slots", authWrap(draftController.AddSlot))
	mux.HandleFunc("POST /drafts/{draftID}/slots/sort", authWrap(draftController.SortSlots))
	mux.HandleFunc("PATCH /drafts/{draftID}/slots/{slotID}", authWrap(draftController.UpdateSlot))
	mux.HandleFunc("DELETE /drafts/{draftID}/slots/{slotID}", authWrap(draftController.RemoveSlot))

	// Component groups
	mux.HandleFunc("POST /groups", authWrap(groupController.SaveGroup))
	mux.HandleFunc("GET /groups", authWrap(groupController.ListGroups))
	mux.HandleFunc("DELETE /groups/{groupID}", authWrap(groupController.DeleteGroup))

	// Events
	mux.HandleFunc("GET /events/{eventID}", authWrap(eventController.GetEvent))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
