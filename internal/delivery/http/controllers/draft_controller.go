package controllers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"eventcomposer/internal/delivery/http/helpers"
	"eventcomposer/internal/domain"
)

// MaxPosterBytes is the largest poster image accepted by AttachPoster.
const MaxPosterBytes = 5 << 20

type DraftController struct {
	Logger  *slog.Logger
	Service domain.DraftService
}

func NewDraftController(logger *slog.Logger, svc domain.DraftService) *DraftController {
	return &DraftController{
		Logger:  logger,
		Service: svc,
	}
}

// DraftSuccessResponse is the success response envelope for endpoints returning a draft.
type DraftSuccessResponse struct {
	Data  *domain.DraftView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SlotSuccessResponse is the success response envelope for endpoints returning one slot.
type SlotSuccessResponse struct {
	Data  *domain.EventSlot `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SlotsSuccessResponse is the success response envelope for endpoints returning the slot list.
type SlotsSuccessResponse struct {
	Data  []domain.EventSlot `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CreateDraft godoc
// @Summary Start composing an event
// @Description Creates a draft owned by the authenticated user, with every category list loaded from the catalog.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 201 {object} controllers.DraftSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /drafts [post]
func (c *DraftController) CreateDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	view, err := c.Service.CreateDraft(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, view)
}

// GetDraft godoc
// @Summary Get a draft
// @Description Returns the form, category lists, selected objects, slots, gallery, poster flag and submission state of a draft.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID} [get]
func (c *DraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	view, err := c.Service.GetDraft(r.Context(), userID, r.PathValue("draftID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// DiscardDraft godoc
// @Summary Discard a draft
// @Tags drafts
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 204 "Draft discarded"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_in_progress"
// @Router /drafts/{draftID} [delete]
func (c *DraftController) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := c.Service.DiscardDraft(r.Context(), userID, r.PathValue("draftID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateDetailsRequest is the request body for PUT /drafts/{draftID}/details. Required
// fields are enforced on submit; formats are checked here.
type UpdateDetailsRequest struct {
	Name        string `json:"name" validate:"max=200"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"max=100"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	EndTime     string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Location    string `json:"location" validate:"max=500"`
	Capacity    *int   `json:"capacity" validate:"omitempty,min=0"`
}

// UpdateDetails godoc
// @Summary Set the event form of a draft
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param body body controllers.UpdateDetailsRequest true "Event details"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/details [put]
func (c *DraftController) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req UpdateDetailsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	view, err := c.Service.UpdateDetails(r.Context(), userID, r.PathValue("draftID"), domain.EventDetails{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		StartDate:   req.StartDate,
		StartTime:   req.StartTime,
		EndDate:     req.EndDate,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Capacity:    req.Capacity,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// ToggleRequest is the request body for POST /drafts/{draftID}/toggle.
type ToggleRequest struct {
	Category string `json:"category" validate:"required,oneof=artists venues resources brands communities"`
	ID       string `json:"id" validate:"required"`
}

// Toggle godoc
// @Summary Toggle the selection of a catalog item
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param body body controllers.ToggleRequest true "Item to toggle"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/toggle [post]
func (c *DraftController) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req ToggleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	view, err := c.Service.Toggle(r.Context(), userID, r.PathValue("draftID"), domain.CategoryTag(req.Category), req.ID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// ApplyGroupRequest is the request body for POST /drafts/{draftID}/apply-group. Exactly
// one of group_id (a saved group) and group (an inline bundle) is set.
type ApplyGroupRequest struct {
	GroupID string                 `json:"group_id"`
	Group   *domain.ComponentGroup `json:"group"`
}

// Validate implements helpers.Validator.
func (r *ApplyGroupRequest) Validate() []string {
	if (r.GroupID == "") == (r.Group == nil) {
		return []string{"exactly one of group_id and group is required"}
	}
	return nil
}

// ApplyGroup godoc
// @Summary Merge a component group into the draft selections
// @Description Marks every item of the group selected, appending items the draft lists do not contain yet. Unknown categories reject the whole group.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param body body controllers.ApplyGroupRequest true "Saved group id or inline group"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/apply-group [post]
func (c *DraftController) ApplyGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req ApplyGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	view, err := c.Service.ApplyGroup(r.Context(), userID, r.PathValue("draftID"), req.GroupID, req.Group)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// AddSlot godoc
// @Summary Add a slot
// @Description Appends a slot of type "other" spanning the event start and end time.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 201 {object} controllers.SlotSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/slots [post]
func (c *DraftController) AddSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	slot, err := c.Service.AddSlot(r.Context(), userID, r.PathValue("draftID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, slot)
}

// UpdateSlot godoc
// @Summary Update a slot
// @Description Changes the given fields of a slot. Setting a venue clears isRequestOnly; setting isRequestOnly clears the venue. Artists, resources and existing venues must be selected in the draft.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param slotID path string true "Slot ID"
// @Param body body domain.SlotUpdate true "Fields to change"
// @Success 200 {object} controllers.SlotSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/slots/{slotID} [patch]
func (c *DraftController) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req domain.SlotUpdate
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := c.Service.UpdateSlot(r.Context(), userID, r.PathValue("draftID"), r.PathValue("slotID"), req)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slot)
}

// RemoveSlot godoc
// @Summary Remove a slot
// @Tags slots
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param slotID path string true "Slot ID"
// @Success 204 "Slot removed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/slots/{slotID} [delete]
func (c *DraftController) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := c.Service.RemoveSlot(r.Context(), userID, r.PathValue("draftID"), r.PathValue("slotID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SortSlots godoc
// @Summary Sort slots by start time
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 200 {object} controllers.SlotsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/slots/sort [post]
func (c *DraftController) SortSlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	slots, err := c.Service.SortSlots(r.Context(), userID, r.PathValue("draftID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slots)
}

// SetGalleryRequest is the request body for PUT /drafts/{draftID}/gallery.
type SetGalleryRequest struct {
	Items []domain.ItemRef `json:"items" validate:"max=50"`
}

// SetGallery godoc
// @Summary Set the gallery items of a draft
// @Description Replaces the gallery with the referenced catalog items, in order.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param body body controllers.SetGalleryRequest true "Gallery items"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/gallery [put]
func (c *DraftController) SetGallery(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req SetGalleryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	gallery, err := c.Service.SetGallery(r.Context(), userID, r.PathValue("draftID"), req.Items)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gallery)
}

// AttachPoster godoc
// @Summary Attach a poster image
// @Description Stores the poster in the draft; it is uploaded when the draft is submitted.
// @Tags drafts
// @Accept multipart/form-data
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Param poster formData file true "Poster image (max 5 MiB)"
// @Success 204 "Poster attached"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Router /drafts/{draftID}/poster [post]
func (c *DraftController) AttachPoster(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxPosterBytes+1<<20)
	file, header, err := r.FormFile("poster")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			helpers.WriteJSONError(w, http.StatusRequestEntityTooLarge, helpers.ErrCodePayloadTooLarge, "poster exceeds 5 MiB")
			return
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing poster file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxPosterBytes+1))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, fmt.Sprintf("read poster: %v", err))
		return
	}
	if len(data) > MaxPosterBytes {
		helpers.WriteJSONError(w, http.StatusRequestEntityTooLarge, helpers.ErrCodePayloadTooLarge, "poster exceeds 5 MiB")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "poster must be an image")
		return
	}

	err = c.Service.AttachPoster(r.Context(), userID, r.PathValue("draftID"), domain.PosterFile{
		Name:        header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitResponse is the data of a successful submission.
type SubmitResponse struct {
	EventID  string `json:"event_id"`
	Location string `json:"location"`
}

// SubmitSuccessResponse is the success response envelope for POST /drafts/{draftID}/submit (201).
type SubmitSuccessResponse struct {
	Data  *SubmitResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Submit godoc
// @Summary Create the event composed in a draft
// @Description Validates the draft, uploads the poster (best effort), reserves content ownership and persists the event. If the event write fails the ownership reservation is released. One submission per draft runs at a time.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftID path string true "Draft ID"
// @Success 201 {object} controllers.SubmitSuccessResponse
// @Header 201 {string} Location "Path of the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: already_in_progress"
// @Failure 502 {object} helpers.APIResponse "error.code: ownership_write_failed or event_write_failed"
// @Router /drafts/{draftID}/submit [post]
func (c *DraftController) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	eventID, err := c.Service.Submit(r.Context(), userID, r.PathValue("draftID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	location := "/events/" + eventID
	w.Header().Set("Location", location)
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmitResponse{EventID: eventID, Location: location})
}
