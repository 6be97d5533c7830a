package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Customer=MockCustomerService

import (
	"context"
	"fmt"
	"strings"

	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	msgEmailExists     = "Email already exists"
	msgCustomerCreated = "Customer created successfully"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CreateCustomerResponse, error)
	// GetAll lists customers; a non-empty email narrows it to that guest.
	GetAll(ctx context.Context, params gDto.QueryParams, email string) (dto.GetCustomersResponse, error)
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CreateCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer := req.ToModel()

	exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    customer.Email,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer email")

		return res, fmt.Errorf("failed to check customer email: %w", err)
	}

	if exist {
		return res, failure.BadRequestFromString(msgEmailExists) //nolint:wrapcheck
	}

	id, err := s.repo.InsertReturningID(ctx, customer)
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgEmailExists) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	return dto.CreateCustomerResponse{ID: id, Message: msgCustomerCreated}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, email string) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{}

	if email = strings.ToLower(strings.TrimSpace(email)); email != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
			Table:    model.TableName,
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
	}

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	params.SortBy = model.TableName + "." + params.SortBy

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}
