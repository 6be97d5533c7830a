package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	"hotel/shared"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomColumns = []string{"id", "room_number", "room_type", "price_per_night", "capacity", "amenities", "is_available", "created_at"}

func newRepository(t *testing.T) (repository.Room, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.New(conn, mocks.NewOtel()), sqlxDB, mock
}

func TestRoomRepository_InsertReturningID(t *testing.T) {
	repo, _, mock := newRepository(t)

	room := model.Room{
		RoomNumber:    gofakeit.Numerify("###"),
		RoomType:      model.TypeDeluxe,
		PricePerNight: decimal.RequireFromString("250.00"),
		Capacity:      3,
		Amenities:     "Jacuzzi",
		IsAvailable:   true,
	}
	room.CreatedAt = time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO rooms (room_number, room_type, price_per_night, capacity, amenities, is_available, created_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id")).
		WithArgs(room.RoomNumber, room.RoomType, room.PricePerNight, room.Capacity, room.Amenities, true, room.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	id, err := repo.InsertReturningID(context.Background(), room)

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectPrepare(`SELECT rooms.id, rooms.room_number, (.+) FROM rooms\s+WHERE \(rooms.id = \$1\)`).
			ExpectQuery().
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(3, "301", "suite", "300.00", 4, "Balcony", true, time.Now()))

		room, err := repo.Get(context.Background(), shared.FilterByID(3, model.FieldID, model.TableName))

		require.NoError(t, err)
		assert.Equal(t, "301", room.RoomNumber)
		assert.True(t, decimal.NewFromInt(300).Equal(room.PricePerNight))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row yields a zero room", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectPrepare(`SELECT (.+) FROM rooms`).
			ExpectQuery().
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(roomColumns))

		room, err := repo.Get(context.Background(), shared.FilterByID(99, model.FieldID, model.TableName))

		require.NoError(t, err)
		assert.Zero(t, room.ID)
	})
}

func TestRoomRepository_GetForUpdateTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(1, "101", "single", "100.00", 1, "WiFi", false, time.Now()))
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(roomColumns))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	room, err := repo.GetForUpdateTx(context.Background(), tx, 1)
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	missing, err := repo.GetForUpdateTx(context.Background(), tx, 2)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_MarkUnavailableTx(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "flag was set", affected: 1, expected: true},
		{name: "already taken", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newRepository(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET is_available = FALSE WHERE id = $1 AND is_available = TRUE")).
				WithArgs(int64(5)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			tx, err := db.Beginx()
			require.NoError(t, err)

			ok, err := repo.MarkUnavailableTx(context.Background(), tx, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)

			require.NoError(t, tx.Commit())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_MarkAvailableTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE rooms SET is_available = \$1\s+WHERE \(rooms.id = \$2\)`).
		WithArgs(true, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.MarkAvailableTx(context.Background(), tx, 5))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
