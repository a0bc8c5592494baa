package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bustrip-backend/internal/mocks"
	"bustrip-backend/internal/service"
	"bustrip-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSchedulerHandler_CompleteElapsedTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTrips := mocks.NewMockTripServiceInterface(ctrl)
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	handler := NewSchedulerHandler(mockTrips)
	handler.now = func() time.Time { return now }

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/internal/trips/complete-elapsed", handler.CompleteElapsedTrips)

	t.Run("reports completed and failed trips", func(t *testing.T) {
		done, failed := uuid.New(), uuid.New()
		mockTrips.EXPECT().CompleteElapsed(gomock.Any(), now).Return(&service.CompletionSummary{
			Completed: []uuid.UUID{done},
			Failed:    map[string]string{failed.String(): "trip was modified concurrently, reload and retry"},
		}, nil)

		recorder := httpSuite.MakeRequest("POST", "/internal/trips/complete-elapsed", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), done.String())
		assert.Contains(t, recorder.Body.String(), failed.String())
	})

	t.Run("query failure", func(t *testing.T) {
		mockTrips.EXPECT().CompleteElapsed(gomock.Any(), now).Return(nil, errors.New("db down"))

		recorder := httpSuite.MakeRequest("POST", "/internal/trips/complete-elapsed", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
