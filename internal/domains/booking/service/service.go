package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"net/http"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	customerModel "hotel/internal/domains/customer/model"
	customerRepo "hotel/internal/domains/customer/repository"
	roomRepo "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgBookingNotFound  = "booking not found"
	msgCustomerNotFound = "customer not found"
	msgRoomNotFound     = "room not found"
	msgInvalidStatus    = "status must be one of pending, confirmed, cancelled"
	msgStatusChanged    = "booking status changed concurrently"

	msgBookingCreated   = "Booking created successfully"
	msgBookingConfirmed = "Booking confirmed successfully"
	msgBookingCancelled = "Booking cancelled successfully"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	// GetAll lists bookings; status is empty or a comma-separated list of statuses.
	GetAll(ctx context.Context, params gDto.QueryParams, status string) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id int64) (dto.StatusChangeResponse, error)
	Cancel(ctx context.Context, id int64) (dto.StatusChangeResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	transactor   postgres.Transactor
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	customerRepo customerRepo.Customer,
	transactor postgres.Transactor,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		transactor:   transactor,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a room for a customer. Locking the room row, inserting the booking
// and clearing the availability flag happen in one transaction; the flag update is
// guarded so a concurrent booking of the same room makes exactly one of them fail.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	nights, err := model.Nights(checkIn, checkOut)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	exist, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer")

		return res, fmt.Errorf("failed to check customer: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgCustomerNotFound) //nolint:wrapcheck
	}

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, req.RoomID)
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == 0 {
			return failure.NotFound(msgRoomNotFound) //nolint:wrapcheck
		}

		if !room.IsAvailable {
			return failure.RoomNotAvailable
		}

		total := model.TotalAmount(room.PricePerNight, nights)

		id, err := s.repo.InsertReturningIDTx(ctx, tx, req.ToModel(checkIn, checkOut, total))
		if err != nil {
			if gRepo.IsForeignKeyViolation(err) {
				return failure.NotFound(msgCustomerNotFound) //nolint:wrapcheck
			}

			return fmt.Errorf("failed to insert booking: %w", err)
		}

		marked, err := s.roomRepo.MarkUnavailableTx(ctx, tx, room.ID)
		if err != nil {
			return fmt.Errorf("failed to update room availability: %w", err)
		}

		if !marked {
			return failure.RoomNotAvailable
		}

		res.ID = id
		res.TotalAmount = total

		return nil
	})
	if err != nil {
		if failure.GetCode(err) == http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to create booking")
		}

		return dto.CreateBookingResponse{}, err
	}

	shared.InvalidateCaches(ctx, s.cache, roomService.CachePrefix)

	res.Message = msgBookingCreated

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status != constant.Empty {
		statuses, err := model.ParseStatuses(status)
		if err != nil {
			return nil, failure.BadRequestFromString(msgInvalidStatus) //nolint:wrapcheck
		}

		statusFilter := gDto.Filter{
			Field:    model.FieldBookingStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    statuses,
			Table:    model.TableName,
		}

		if len(statuses) == 1 {
			statusFilter.Operator = gDto.FilterOperatorEq
			statusFilter.Value = statuses[0]
		}

		filter.Filters = append(filter.Filters, statusFilter)
	}

	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
	}

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	params.SortBy = model.TableName + "." + params.SortBy

	details, err := s.repo.GetAllDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(details), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == 0 {
		return res, failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id int64) (res dto.StatusChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusConfirmed, msgBookingConfirmed)
}

// Cancel also hands the room back, in the same transaction as the status change.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (res dto.StatusChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusCancelled, msgBookingCancelled)
}

func (s *serviceImpl) transition(ctx context.Context, id int64, next model.Status, message string) (res dto.StatusChangeResponse, err error) {
	var roomID int64

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, err := s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == 0 {
			return failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
		}

		status, err := booking.BookingStatus.Transition(next)
		if err != nil {
			return failure.Conflict(err.Error()) //nolint:wrapcheck
		}

		updated, err := s.repo.UpdateStatusTx(ctx, tx, booking.ID, booking.BookingStatus, status)
		if err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if !updated {
			return failure.Conflict(msgStatusChanged) //nolint:wrapcheck
		}

		if status.ReleasesRoom() {
			if err := s.roomRepo.MarkAvailableTx(ctx, tx, booking.RoomID); err != nil {
				return fmt.Errorf("failed to release room: %w", err)
			}

			roomID = booking.RoomID
		}

		res.ID = booking.ID
		res.BookingStatus = status

		return nil
	})
	if err != nil {
		if failure.GetCode(err) == http.StatusInternalServerError {
			log.Error().Err(err).Int64("bookingID", id).Msg("failed to change booking status")
		}

		return dto.StatusChangeResponse{}, err
	}

	if roomID != 0 {
		shared.InvalidateCaches(ctx, s.cache, roomService.CachePrefix)
	}

	res.Message = message

	return res, nil
}
