package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Ancillary=MockAncillaryService

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/ancillary/model"
	"hotel/internal/domains/ancillary/model/dto"
	"hotel/internal/domains/ancillary/repository"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgBookingNotFound = "booking not found"
	msgServiceAdded    = "Service added successfully"
)

type Ancillary interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.CreateServiceResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, bookingID int64) ([]dto.ServiceResponse, error)
}

type serviceImpl struct {
	repo        repository.Ancillary
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Ancillary, bookingRepo bookingRepo.Booking, otel otel.Otel) Ancillary {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

// Create charges a service to an existing booking, dated today.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.CreateServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ancillary.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking")

		return res, fmt.Errorf("failed to check booking: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
	}

	id, err := s.repo.InsertReturningID(ctx, req.ToModel(timezone.Now()))
	if err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert service")

		return res, fmt.Errorf("failed to add service: %w", err)
	}

	return dto.CreateServiceResponse{ID: id, Message: msgServiceAdded}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, bookingID int64) (res []dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ancillary.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}
	if bookingID > 0 {
		filter = shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)
	}

	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldServiceDate
	}

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	params.SortBy = model.TableName + "." + params.SortBy

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	return dto.FromModels(models), nil
}
