package handlers

import (
	"net/http"

	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests for organization membership and invitations
type MembershipHandler struct {
	service service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(service service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// Invite handles POST /api/v1/organizations/:id/invitations
// @Summary Invite a user into an organization
// @Description Adds the user directly or issues a pending invitation, depending on the configured mode
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitation body service.InviteRequest true "Invitee"
// @Success 201 {object} service.OperationResult "Member added or invitation issued"
// @Failure 400 {object} service.OperationResult "Invalid request"
// @Failure 403 {object} service.OperationResult "Not permitted"
// @Failure 409 {object} service.OperationResult "Already a member"
// @Security BearerAuth
// @Router /organizations/{id}/invitations [post]
func (h *MembershipHandler) Invite(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.InviteRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Invite(c.Request.Context(), actor, orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "member added"
	if result.Invitation != nil {
		message = "invitation issued"
	}
	respondSuccess(c, http.StatusCreated, message, result)
}

// AcceptInvitation handles POST /api/v1/invitations/accept
// @Summary Accept a pending invitation
// @Tags memberships
// @Accept json
// @Produce json
// @Param invitation body service.AcceptInvitationRequest true "Invitation token"
// @Success 201 {object} service.OperationResult "Membership created"
// @Failure 403 {object} service.OperationResult "Invitation issued to another email"
// @Failure 422 {object} service.OperationResult "Invitation expired or already used"
// @Security BearerAuth
// @Router /invitations/accept [post]
func (h *MembershipHandler) AcceptInvitation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.AcceptInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	membership, err := h.service.AcceptInvitation(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "invitation accepted", membership)
}

// RevokeInvitation handles DELETE /api/v1/invitations/:id
// @Summary Revoke a pending invitation
// @Tags memberships
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.OperationResult "Invitation revoked"
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *MembershipHandler) RevokeInvitation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "invitation")
	if !ok {
		return
	}

	if err := h.service.RevokeInvitation(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "invitation revoked", nil)
}

// ListMembers handles GET /api/v1/organizations/:id/members
// @Summary List members of an organization
// @Tags memberships
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MembershipListResponse
// @Failure 403 {object} service.OperationResult "Not a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
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
	members, err := h.service.ListMembers(actor, orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// ChangeRole handles PUT /api/v1/memberships/:id/role
// @Summary Change the member type of a membership
// @Description Promoting a member to creator transfers ownership and demotes the previous creator to admin
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership ID (UUID)"
// @Param role body service.ChangeRoleRequest true "New member type"
// @Success 200 {object} service.OperationResult "Role changed"
// @Failure 409 {object} service.OperationResult "Concurrent modification"
// @Failure 422 {object} service.OperationResult "Creator cannot be demoted directly"
// @Security BearerAuth
// @Router /memberships/{id}/role [put]
func (h *MembershipHandler) ChangeRole(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "membership")
	if !ok {
		return
	}

	var req service.ChangeRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	membership, err := h.service.ChangeRole(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "role changed", membership)
}

// RemoveMember handles DELETE /api/v1/memberships/:id
// @Summary Remove a member from an organization
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership ID (UUID)"
// @Param removal body service.RemoveMemberRequest false "Reassignment target and expected version"
// @Success 200 {object} service.OperationResult "Member removed"
// @Failure 409 {object} service.OperationResult "Creator cannot leave, member still referenced or concurrent modification"
// @Security BearerAuth
// @Router /memberships/{id} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "membership")
	if !ok {
		return
	}

	var req service.RemoveMemberRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	if err := h.service.Remove(c.Request.Context(), actor, id, &req); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "member removed", nil)
}

// Leave handles POST /api/v1/organizations/:id/leave
// @Summary Leave an organization
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param removal body service.RemoveMemberRequest false "Reassignment target and expected version"
// @Success 200 {object} service.OperationResult "Left organization"
// @Failure 409 {object} service.OperationResult "Creator cannot leave"
// @Security BearerAuth
// @Router /organizations/{id}/leave [post]
func (h *MembershipHandler) Leave(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.RemoveMemberRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	if err := h.service.SelfRemove(c.Request.Context(), actor, orgID, &req); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "left organization", nil)
}
