package handlers

import (
	"net/http"

	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization; the caller becomes its creator
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OperationResult "Successfully created organization"
// @Failure 400 {object} service.OperationResult "Invalid request body"
// @Failure 409 {object} service.OperationResult "Organization already exists"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "organization created", org)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} service.OperationResult "Invalid organization ID"
// @Failure 404 {object} service.OperationResult "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List the caller's organizations
// @Tags organizations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.OrganizationListResponse "Successfully retrieved organizations"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	orgs, err := h.service.ListForUser(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OperationResult "Successfully updated organization"
// @Failure 404 {object} service.OperationResult "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "organization updated", org)
}

// DeactivateOrganization handles POST /api/v1/organizations/:id/deactivate
// @Summary Deactivate organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param deactivation body service.DeactivateOrganizationRequest true "Reason"
// @Success 200 {object} service.OperationResult "Organization deactivated"
// @Security BearerAuth
// @Router /organizations/{id}/deactivate [post]
func (h *OrganizationHandler) DeactivateOrganization(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.DeactivateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Deactivate(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "organization deactivated", org)
}

// ReactivateOrganization handles POST /api/v1/organizations/:id/reactivate
// @Summary Reactivate organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OperationResult "Organization reactivated"
// @Security BearerAuth
// @Router /organizations/{id}/reactivate [post]
func (h *OrganizationHandler) ReactivateOrganization(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.Reactivate(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "organization reactivated", org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OperationResult "Organization deleted"
// @Failure 403 {object} service.OperationResult "Only the creator can delete"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "organization deleted", nil)
}
