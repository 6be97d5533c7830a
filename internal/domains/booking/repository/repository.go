package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryGetForUpdate = `SELECT id, customer_id, room_id, check_in_date, check_out_date, total_amount, booking_status, special_requests, created_at
		FROM bookings WHERE id = $1 FOR UPDATE`
	queryUpdateStatus = `UPDATE bookings SET booking_status = $1 WHERE id = $2 AND booking_status = $3`
)

type Booking interface {
	InsertReturningIDTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) (int64, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error)
	GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.Booking, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, from, to model.Status) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	details gRepo.Repository[model.BookingDetail]
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.BookingDetail](model.EntityName+"_detail", model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.BookingDetail, error) {
	return repo.details.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return repo.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// GetForUpdateTx locks the booking row until tx ends. A missing booking yields a zero ID.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetForUpdateTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetForUpdate)

	err = tx.GetContext(ctx, &booking, queryGetForUpdate, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, nil
}

// UpdateStatusTx moves the booking only if it is still in from.
func (repo *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, from, to model.Status) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUpdateStatus)

	result, err := tx.ExecContext(ctx, queryUpdateStatus, to, id, from)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}
