package handlers

import (
	"net/http"

	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// SetActiveRequest toggles whether a resource is in service
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// CreateGroup handles POST /api/v1/organizations/:id/groups
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.OperationResult "Group created"
// @Failure 409 {object} service.OperationResult "Group name taken"
// @Security BearerAuth
// @Router /organizations/{id}/groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.Create(c.Request.Context(), actor, orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "group created", group)
}

// ListGroups handles GET /api/v1/organizations/:id/groups
// @Summary List groups of an organization
// @Tags groups
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.GroupListResponse
// @Security BearerAuth
// @Router /organizations/{id}/groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	groups, err := h.service.GetByOrganization(actor, orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup handles GET /api/v1/groups/:id
// @Summary Get group by ID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse
// @Failure 404 {object} service.OperationResult "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "group")
	if !ok {
		return
	}

	group, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup handles PUT /api/v1/groups/:id
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.UpdateGroupRequest true "Changed fields"
// @Success 200 {object} service.OperationResult "Group updated"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "group")
	if !ok {
		return
	}

	var req service.UpdateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "group updated", group)
}

// SetGroupActive handles PUT /api/v1/groups/:id/active
// @Summary Activate or deactivate a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param state body SetActiveRequest true "Desired state"
// @Success 200 {object} service.OperationResult "Group state changed"
// @Security BearerAuth
// @Router /groups/{id}/active [put]
func (h *GroupHandler) SetGroupActive(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "group")
	if !ok {
		return
	}

	var req SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.SetActive(c.Request.Context(), actor, id, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "group state changed", group)
}

// DeleteGroup handles DELETE /api/v1/groups/:id
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.OperationResult "Group deleted"
// @Failure 409 {object} service.OperationResult "Group still has open trips"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "group")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "group deleted", nil)
}
