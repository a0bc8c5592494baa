package handlers

import (
	"net/http"

	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TripHandler handles HTTP requests for the trip lifecycle
type TripHandler struct {
	service service.TripServiceInterface
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service service.TripServiceInterface) *TripHandler {
	return &TripHandler{service: service}
}

// CreateTrip handles POST /api/v1/trips
// @Summary Create a trip
// @Description Create a draft trip in an organization
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body service.CreateTripRequest true "Trip data"
// @Success 201 {object} service.OperationResult "Trip created"
// @Failure 400 {object} service.OperationResult "Invalid request"
// @Failure 403 {object} service.OperationResult "Not permitted"
// @Failure 422 {object} service.OperationResult "Organization or group inactive"
// @Security BearerAuth
// @Router /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateTripRequest
	if !bindJSON(c, &req) {
		return
	}

	trip, err := h.service.CreateTrip(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "trip created", trip)
}

// GetTrip handles GET /api/v1/trips/:id
// @Summary Get trip by ID
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Success 200 {object} service.TripResponse
// @Failure 404 {object} service.OperationResult "Trip not found"
// @Security BearerAuth
// @Router /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "trip")
	if !ok {
		return
	}

	trip, err := h.service.GetTrip(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// ListTrips handles GET /api/v1/trips
// @Summary List trips of an organization
// @Tags trips
// @Produce json
// @Param organization_id query string true "Organization ID (UUID)"
// @Param status query string false "Trip status filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TripListResponse
// @Failure 400 {object} service.OperationResult "Invalid filter"
// @Security BearerAuth
// @Router /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	orgID, err := uuid.Parse(c.Query("organization_id"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("organization_id", "query parameter must be a valid UUID"))
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	trips, err := h.service.ListTrips(actor, orgID, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

// UpdateTrip handles PUT /api/v1/trips/:id
// @Summary Edit a draft trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Param trip body service.UpdateTripRequest true "Changed fields"
// @Success 200 {object} service.OperationResult "Trip updated"
// @Failure 409 {object} service.OperationResult "Stale version"
// @Failure 422 {object} service.OperationResult "Trip is not a draft"
// @Security BearerAuth
// @Router /trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "trip")
	if !ok {
		return
	}

	var req service.UpdateTripRequest
	if !bindJSON(c, &req) {
		return
	}

	trip, err := h.service.UpdateTrip(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "trip updated", trip)
}

// SubmitForQuote handles POST /api/v1/trips/:id/submit
// @Summary Submit a draft trip for a quote
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Success 200 {object} service.OperationResult "Trip submitted"
// @Failure 400 {object} service.OperationResult "Trip is incomplete"
// @Failure 409 {object} service.OperationResult "Invalid transition"
// @Security BearerAuth
// @Router /trips/{id}/submit [post]
func (h *TripHandler) SubmitForQuote(c *gin.Context) {
	h.transition(c, "trip submitted for quote", func(actor service.Actor, id uuid.UUID) (*service.TripResponse, error) {
		return h.service.SubmitForQuote(c.Request.Context(), actor, id)
	})
}

// Decide handles POST /api/v1/trips/:id/decision
// @Summary Approve or reject a quoted trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Param decision body service.DecisionRequest true "Decision"
// @Success 200 {object} service.OperationResult "Decision recorded"
// @Failure 409 {object} service.OperationResult "Invalid transition"
// @Security BearerAuth
// @Router /trips/{id}/decision [post]
func (h *TripHandler) Decide(c *gin.Context) {
	var req service.DecisionRequest
	if !bindJSON(c, &req) {
		return
	}
	message := "trip approved"
	if req.Decision == "reject" {
		message = "trip rejected"
	}
	h.transition(c, message, func(actor service.Actor, id uuid.UUID) (*service.TripResponse, error) {
		return h.service.ApproveOrReject(c.Request.Context(), actor, id, &req)
	})
}

// Activate handles POST /api/v1/trips/:id/activate
// @Summary Start an approved, assigned trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Success 200 {object} service.OperationResult "Trip is live"
// @Failure 422 {object} service.OperationResult "Trip has no assignment"
// @Security BearerAuth
// @Router /trips/{id}/activate [post]
func (h *TripHandler) Activate(c *gin.Context) {
	h.transition(c, "trip activated", func(actor service.Actor, id uuid.UUID) (*service.TripResponse, error) {
		return h.service.Activate(c.Request.Context(), actor, id)
	})
}

// Cancel handles POST /api/v1/trips/:id/cancel
// @Summary Cancel a trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Param cancel body service.CancelRequest true "Cancellation reason"
// @Success 200 {object} service.OperationResult "Trip canceled"
// @Failure 409 {object} service.OperationResult "Invalid transition"
// @Security BearerAuth
// @Router /trips/{id}/cancel [post]
func (h *TripHandler) Cancel(c *gin.Context) {
	var req service.CancelRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "trip canceled", func(actor service.Actor, id uuid.UUID) (*service.TripResponse, error) {
		return h.service.Cancel(c.Request.Context(), actor, id, &req)
	})
}

// Copy handles POST /api/v1/trips/:id/copy
// @Summary Copy a trip into a new draft
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Success 201 {object} service.OperationResult "Draft created"
// @Security BearerAuth
// @Router /trips/{id}/copy [post]
func (h *TripHandler) Copy(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "trip")
	if !ok {
		return
	}

	trip, err := h.service.Copy(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "trip copied", trip)
}

// Assign handles POST /api/v1/trips/:id/assignments
// @Summary Assign a bus and driver
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Param assignment body service.AssignRequest true "Equipment and driver"
// @Success 201 {object} service.OperationResult "Assignment created"
// @Failure 422 {object} service.OperationResult "Trip not approved or resource inactive"
// @Security BearerAuth
// @Router /trips/{id}/assignments [post]
func (h *TripHandler) Assign(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "trip")
	if !ok {
		return
	}

	var req service.AssignRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.service.Assign(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "bus assigned", assignment)
}

// Unassign handles DELETE /api/v1/trips/:id/assignments/:assignmentId
// @Summary Remove a bus assignment
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Param assignmentId path string true "Assignment ID (UUID)"
// @Success 200 {object} service.OperationResult "Assignment removed"
// @Security BearerAuth
// @Router /trips/{id}/assignments/{assignmentId} [delete]
func (h *TripHandler) Unassign(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "trip")
	if !ok {
		return
	}
	assignmentID, ok := uuidParam(c, "assignmentId", "assignment")
	if !ok {
		return
	}

	if err := h.service.Unassign(c.Request.Context(), actor, id, assignmentID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "assignment removed", nil)
}

// GetChangeLog handles GET /api/v1/trips/:id/changelog
// @Summary Status history of a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID (UUID)"
// @Success 200 {array} service.ChangeLogResponse
// @Security BearerAuth
// @Router /trips/{id}/changelog [get]
func (h *TripHandler) GetChangeLog(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "trip")
	if !ok {
		return
	}

	entries, err := h.service.GetChangeLog(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *TripHandler) transition(c *gin.Context, message string, fn func(service.Actor, uuid.UUID) (*service.TripResponse, error)) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "trip")
	if !ok {
		return
	}

	trip, err := fn(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, message, trip)
}
