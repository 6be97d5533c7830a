package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryGetForUpdate = `SELECT id, room_number, room_type, price_per_night, capacity, amenities, is_available, created_at
		FROM rooms WHERE id = $1 FOR UPDATE`
	queryMarkUnavailable = `UPDATE rooms SET is_available = FALSE WHERE id = $1 AND is_available = TRUE`
)

type Room interface {
	InsertReturningID(ctx context.Context, model model.Room) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.Room, error)
	MarkUnavailableTx(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
	MarkAvailableTx(ctx context.Context, tx *sqlx.Tx, id int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetForUpdateTx locks the room row until tx ends. A missing room yields a zero ID.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (room model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetForUpdateTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetForUpdate)

	err = tx.GetContext(ctx, &room, queryGetForUpdate, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	return room, nil
}

// MarkUnavailableTx flips the availability flag only while it is still set.
// It reports false when another booking got there first.
func (repo *repositoryImpl) MarkUnavailableTx(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.MarkUnavailableTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryMarkUnavailable)

	result, err := tx.ExecContext(ctx, queryMarkUnavailable, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark room unavailable: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (repo *repositoryImpl) MarkAvailableTx(ctx context.Context, tx *sqlx.Tx, id int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.MarkAvailableTx")
	defer scope.End()

	err := repo.UpdateTx(ctx, tx, map[string]any{model.FieldIsAvailable: true}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to mark room available: %w", err)
	}

	return nil
}
