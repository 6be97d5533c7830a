package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Diagnostic=MockDiagnosticService

import (
	"context"
	"sync"

	"hotel/config"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	customerRepo "hotel/internal/domains/customer/repository"
	"hotel/internal/domains/diagnostic/model"
	"hotel/internal/domains/diagnostic/model/dto"
	"hotel/internal/domains/diagnostic/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	msgHealthy      = "Hotel Booking API is running"
	msgDatabaseUp   = "Database connection successful"
	msgTables       = "Database tables information"
	msgStatistics   = "System statistics"
	maxParallelStat = 4
)

type Diagnostic interface {
	Health(ctx context.Context) dto.HealthResponse
	DatabaseStatus(ctx context.Context) (dto.DatabaseStatusResponse, error)
	Tables(ctx context.Context) (dto.TablesResponse, error)
	Statistics(ctx context.Context) dto.StatisticsResponse
}

type counter func(ctx context.Context) (int, error)

type serviceImpl struct {
	repo         repository.Diagnostic
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	bookingRepo  bookingRepo.Booking
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Diagnostic,
	roomRepo roomRepo.Room,
	customerRepo customerRepo.Customer,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	otel otel.Otel,
) Diagnostic {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Health(_ context.Context) dto.HealthResponse {
	return dto.HealthResponse{
		Status:    constant.StatusOK,
		Message:   msgHealthy,
		Timestamp: timestamp(),
		Version:   s.cfg.App.Version,
	}
}

func (s *serviceImpl) DatabaseStatus(ctx context.Context) (res dto.DatabaseStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".diagnostic.DatabaseStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("database ping failed")

		return res, err
	}

	write := s.cfg.DB.Postgres.Write

	return dto.DatabaseStatusResponse{
		Status:    constant.StatusOK,
		Message:   msgDatabaseUp,
		Timestamp: timestamp(),
		Connection: dto.Connection{
			Host:     write.Host,
			Database: s.cfg.DB.Postgres.Prefix + write.Name,
			User:     write.Username,
		},
	}, nil
}

func (s *serviceImpl) Tables(ctx context.Context) (res dto.TablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".diagnostic.Tables")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tables, err := s.repo.Tables(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list tables")

		return res, err
	}

	res.Status = constant.StatusOK
	res.Message = msgTables
	res.Timestamp = timestamp()
	res.FromModels(tables)

	return res, nil
}

// Statistics runs every count concurrently. A failed count is reported under its
// own key and never fails the whole report.
func (s *serviceImpl) Statistics(ctx context.Context) dto.StatisticsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".diagnostic.Statistics")
	defer scope.End()

	counters := s.counters()

	var (
		mu    sync.Mutex
		group errgroup.Group
		stats = make(map[string]any, len(counters))
	)

	group.SetLimit(maxParallelStat)

	for key, count := range counters {
		group.Go(func() error {
			var value any

			total, err := count(ctx)
			if err != nil {
				log.Error().Err(err).Str("statistic", key).Msg("failed to compute statistic")

				value = dto.StatisticError{Error: err.Error()}
			} else {
				value = total
			}

			mu.Lock()
			stats[key] = value
			mu.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	return dto.StatisticsResponse{
		Status:     constant.StatusOK,
		Message:    msgStatistics,
		Timestamp:  timestamp(),
		Statistics: stats,
	}
}

func (s *serviceImpl) counters() map[string]counter {
	rooms := func(filter gDto.FilterGroup) counter {
		return func(ctx context.Context) (int, error) { return s.roomRepo.Count(ctx, filter) } //nolint:wrapcheck
	}

	bookings := func(filter gDto.FilterGroup) counter {
		return func(ctx context.Context) (int, error) { return s.bookingRepo.Count(ctx, filter) } //nolint:wrapcheck
	}

	return map[string]counter{
		model.StatTotalRooms:     rooms(gDto.FilterGroup{}),
		model.StatAvailableRooms: rooms(eq(roomModel.TableName, roomModel.FieldIsAvailable, true)),
		model.StatTotalCustomers: func(ctx context.Context) (int, error) {
			return s.customerRepo.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
		},
		model.StatTotalBookings:     bookings(gDto.FilterGroup{}),
		model.StatPendingBookings:   bookings(eq(bookingModel.TableName, bookingModel.FieldBookingStatus, bookingModel.StatusPending)),
		model.StatConfirmedBookings: bookings(eq(bookingModel.TableName, bookingModel.FieldBookingStatus, bookingModel.StatusConfirmed)),
		model.StatCancelledBookings: bookings(eq(bookingModel.TableName, bookingModel.FieldBookingStatus, bookingModel.StatusCancelled)),
	}
}

func eq(table, field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}

func timestamp() string {
	return timezone.Now().Format(constant.DateFormat)
}
