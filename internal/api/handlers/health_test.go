package handlers

import (
	"errors"
	"net/http"
	"testing"

	"bustrip-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	httpSuite := testutils.SetupHTTPTest()
	handler := NewHealthHandler(db)
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("healthy", func(t *testing.T) {
		mock.ExpectPing()

		recorder := httpSuite.MakeRequest("GET", "/health", nil)

		var response HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Services["database"])
	})

	t.Run("database unreachable", func(t *testing.T) {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		recorder := httpSuite.MakeRequest("GET", "/health", nil)

		var response HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
	})

	t.Run("not ready", func(t *testing.T) {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		recorder := httpSuite.MakeRequest("GET", "/health/ready", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("live never touches the database", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("GET", "/health/live", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
