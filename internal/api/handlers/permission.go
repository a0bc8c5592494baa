package handlers

import (
	"net/http"

	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PermissionHandler handles HTTP requests for organization permissions
type PermissionHandler struct {
	service service.PermissionServiceInterface
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(service service.PermissionServiceInterface) *PermissionHandler {
	return &PermissionHandler{service: service}
}

// GetPermissions handles GET /api/v1/organizations/:id/permissions
// @Summary Permission matrix of an organization
// @Tags permissions
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.PermissionResponse
// @Failure 403 {object} service.OperationResult "Not a member"
// @Security BearerAuth
// @Router /organizations/{id}/permissions [get]
func (h *PermissionHandler) GetPermissions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	permissions, err := h.service.GetPermissions(actor, orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}

// SetPermissions handles PUT /api/v1/organizations/:id/permissions
// @Summary Replace the permissions of one member type
// @Tags permissions
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param permissions body service.SetPermissionsRequest true "Permission flags"
// @Success 200 {object} service.OperationResult "Permissions updated"
// @Failure 403 {object} service.OperationResult "Not permitted"
// @Security BearerAuth
// @Router /organizations/{id}/permissions [put]
func (h *PermissionHandler) SetPermissions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.SetPermissionsRequest
	if !bindJSON(c, &req) {
		return
	}

	permissions, err := h.service.SetPermissions(actor, orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "permissions updated", permissions)
}
