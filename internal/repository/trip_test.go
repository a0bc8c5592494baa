package repository

import (
	"errors"
	"testing"
	"time"

	"bustrip-backend/internal/database/models"
	apperrors "bustrip-backend/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftTrip() *models.Trip {
	return &models.Trip{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		OrganizationID:   uuid.New(),
		CreatedForUserID: uuid.New(),
		Title:            "Museum visit",
		Status:           models.TripStatusDraft,
		Version:          3,
	}
}

func TestTripRepository_UpdateBumpsVersion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)
	trip := draftTrip()

	mock.ExpectExec(`UPDATE "trips" SET .* WHERE id = \$\d+ AND version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(trip))
	assert.Equal(t, 4, trip.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_UpdateStaleVersionConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)
	trip := draftTrip()

	mock.ExpectExec(`UPDATE "trips" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(trip)

	assert.ErrorIs(t, err, apperrors.ErrTripConflict)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, 3, trip.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_UpdateDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)
	trip := draftTrip()

	mock.ExpectExec(`UPDATE "trips" SET`).WillReturnError(errors.New("connection reset"))

	err := repo.Update(trip)

	assert.EqualError(t, err, "connection reset")
	assert.Equal(t, 3, trip.Version)
}

func TestTripRepository_TouchBumpsVersion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)
	trip := draftTrip()
	trip.Status = models.TripStatusApproved

	mock.ExpectExec(`UPDATE "trips" SET .* WHERE id = \$\d+ AND version = \$\d+ AND status = \$\d+`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 4, trip.ID, 3, models.TripStatusApproved).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Touch(trip, models.TripStatusApproved))
	assert.Equal(t, 4, trip.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_TouchStatusChangedConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)
	trip := draftTrip()

	mock.ExpectExec(`UPDATE "trips" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Touch(trip, models.TripStatusApproved)

	assert.ErrorIs(t, err, apperrors.ErrTripConflict)
	assert.Equal(t, 3, trip.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripRepository_ReassignOpenCreatedFor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	mock.ExpectExec(`UPDATE "trips" SET .*version.*WHERE organization_id = \$\d+ AND created_for_user_id = \$\d+ AND status IN`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	moved, err := repo.ReassignOpenCreatedFor(uuid.New(), uuid.New(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripChangeLogRepository_GetByTripIDOldestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripChangeLogRepository(db)
	tripID := uuid.New()
	first := time.Now().Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"id", "trip_id", "old_status", "new_status", "changed_at"}).
		AddRow(uuid.New().String(), tripID.String(), "", "draft", first).
		AddRow(uuid.New().String(), tripID.String(), "draft", "quoted", first.Add(time.Minute))
	mock.ExpectQuery(`SELECT \* FROM "trip_change_logs" WHERE trip_id = \$1 ORDER BY changed_at ASC`).
		WithArgs(tripID).
		WillReturnRows(rows)

	entries, err := repo.GetByTripID(tripID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.TripStatus(""), entries[0].OldStatus)
	assert.Equal(t, models.TripStatusDraft, entries[1].OldStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
