package handlers

import (
	"net/http"
	"time"

	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SchedulerHandler exposes jobs triggered by the external scheduler
type SchedulerHandler struct {
	trips service.TripServiceInterface
	now   func() time.Time
}

// NewSchedulerHandler creates a new scheduler handler
func NewSchedulerHandler(trips service.TripServiceInterface) *SchedulerHandler {
	return &SchedulerHandler{trips: trips, now: time.Now}
}

// CompleteElapsedTrips handles POST /internal/trips/complete-elapsed
// @Summary Complete live trips whose return time has passed
// @Description Called by the external scheduler with the shared secret header
// @Tags internal
// @Produce json
// @Param X-Scheduler-Secret header string true "Scheduler shared secret"
// @Success 200 {object} service.OperationResult "Completion summary"
// @Failure 401 {object} service.OperationResult "Invalid scheduler secret"
// @Router /internal/trips/complete-elapsed [post]
func (h *SchedulerHandler) CompleteElapsedTrips(c *gin.Context) {
	summary, err := h.trips.CompleteElapsed(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
		"completed": len(summary.Completed),
		"failed":    len(summary.Failed),
	}).Info("scheduled trip completion finished")

	respondSuccess(c, http.StatusOK, "elapsed trips processed", summary)
}
