package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_MarkReadOnlyOwnUnread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE "user_notifications" SET "read_at"=\$1 WHERE id = \$2 AND user_id = \$3 AND read_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.MarkRead(uuid.New(), uuid.New(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE "user_notifications" SET "read_at"=\$1 WHERE user_id = \$2 AND read_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 5))

	updated, err := repo.MarkAllRead(uuid.New(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
