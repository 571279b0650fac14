package controllers

import (
	"log/slog"
	"net/http"

	"eventcomposer/internal/delivery/http/helpers"
	"eventcomposer/internal/domain"
)

type GroupController struct {
	Logger  *slog.Logger
	Service domain.DraftService
}

func NewGroupController(logger *slog.Logger, svc domain.DraftService) *GroupController {
	return &GroupController{
		Logger:  logger,
		Service: svc,
	}
}

// SaveGroupRequest is the request body for POST /groups.
type SaveGroupRequest struct {
	DraftID     string `json:"draft_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// GroupSuccessResponse is the success response envelope for POST /groups (201).
type GroupSuccessResponse struct {
	Data  *domain.ComponentGroup `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// GroupsSuccessResponse is the success response envelope for GET /groups.
type GroupsSuccessResponse struct {
	Data  []domain.ComponentGroup `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// SaveGroup godoc
// @Summary Save the selections of a draft as a component group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.SaveGroupRequest true "Draft and group name"
// @Success 201 {object} controllers.GroupSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /groups [post]
func (c *GroupController) SaveGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req SaveGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	group, err := c.Service.SaveGroup(r.Context(), userID, req.DraftID, req.Name, req.Description)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, group)
}

// ListGroups godoc
// @Summary List the saved component groups of the user
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.GroupsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /groups [get]
func (c *GroupController) ListGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	groups, err := c.Service.ListGroups(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, groups)
}

// DeleteGroup godoc
// @Summary Delete a saved component group
// @Tags groups
// @Security BearerAuth
// @Param groupID path string true "Group ID"
// @Success 204 "Group deleted"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /groups/{groupID} [delete]
func (c *GroupController) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteGroup(r.Context(), userID, r.PathValue("groupID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
