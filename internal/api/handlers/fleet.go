package handlers

import (
	"net/http"

	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FleetHandler handles HTTP requests for buses and drivers
type FleetHandler struct {
	service service.FleetServiceInterface
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(service service.FleetServiceInterface) *FleetHandler {
	return &FleetHandler{service: service}
}

// CreateEquipment handles POST /api/v1/equipment
// @Summary Register a bus
// @Tags fleet
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Bus data"
// @Success 201 {object} service.OperationResult "Bus registered"
// @Failure 409 {object} service.OperationResult "Bus number taken"
// @Security BearerAuth
// @Router /equipment [post]
func (h *FleetHandler) CreateEquipment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}

	equipment, err := h.service.CreateEquipment(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "equipment registered", equipment)
}

// ListEquipment handles GET /api/v1/equipment
// @Summary List buses
// @Tags fleet
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EquipmentListResponse
// @Security BearerAuth
// @Router /equipment [get]
func (h *FleetHandler) ListEquipment(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	equipment, err := h.service.ListEquipment(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// GetEquipment handles GET /api/v1/equipment/:id
// @Summary Get bus by ID
// @Tags fleet
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} service.EquipmentResponse
// @Failure 404 {object} service.OperationResult "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [get]
func (h *FleetHandler) GetEquipment(c *gin.Context) {
	id, ok := uuidParam(c, "id", "equipment")
	if !ok {
		return
	}

	equipment, err := h.service.GetEquipment(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// SetEquipmentActive handles PUT /api/v1/equipment/:id/active
// @Summary Put a bus in or out of service
// @Tags fleet
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param state body SetActiveRequest true "Desired state"
// @Success 200 {object} service.OperationResult "Equipment state changed"
// @Security BearerAuth
// @Router /equipment/{id}/active [put]
func (h *FleetHandler) SetEquipmentActive(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "equipment")
	if !ok {
		return
	}

	var req SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.SetEquipmentActive(c.Request.Context(), actor, id, *req.IsActive); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "equipment state changed", nil)
}

// CreateDriver handles POST /api/v1/drivers
// @Summary Register a driver
// @Tags fleet
// @Accept json
// @Produce json
// @Param driver body service.CreateDriverRequest true "Driver data"
// @Success 201 {object} service.OperationResult "Driver registered"
// @Failure 409 {object} service.OperationResult "User is already a driver"
// @Security BearerAuth
// @Router /drivers [post]
func (h *FleetHandler) CreateDriver(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateDriverRequest
	if !bindJSON(c, &req) {
		return
	}

	driver, err := h.service.CreateDriver(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "driver registered", driver)
}

// ListDrivers handles GET /api/v1/drivers
// @Summary List drivers
// @Tags fleet
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DriverListResponse
// @Security BearerAuth
// @Router /drivers [get]
func (h *FleetHandler) ListDrivers(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	drivers, err := h.service.ListDrivers(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// GetDriver handles GET /api/v1/drivers/:id
// @Summary Get driver by ID
// @Tags fleet
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Success 200 {object} service.DriverResponse
// @Failure 404 {object} service.OperationResult "Driver not found"
// @Security BearerAuth
// @Router /drivers/{id} [get]
func (h *FleetHandler) GetDriver(c *gin.Context) {
	id, ok := uuidParam(c, "id", "driver")
	if !ok {
		return
	}

	driver, err := h.service.GetDriver(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

// SetDriverActive handles PUT /api/v1/drivers/:id/active
// @Summary Activate or deactivate a driver
// @Tags fleet
// @Accept json
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Param state body SetActiveRequest true "Desired state"
// @Success 200 {object} service.OperationResult "Driver state changed"
// @Security BearerAuth
// @Router /drivers/{id}/active [put]
func (h *FleetHandler) SetDriverActive(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "driver")
	if !ok {
		return
	}

	var req SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.SetDriverActive(c.Request.Context(), actor, id, *req.IsActive); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "driver state changed", nil)
}
