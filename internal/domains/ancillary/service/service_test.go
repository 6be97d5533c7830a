package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	ancillaryMocks "hotel/internal/domains/ancillary/mocks"
	"hotel/internal/domains/ancillary/model"
	"hotel/internal/domains/ancillary/model/dto"
	"hotel/internal/domains/ancillary/service"
	bookingMocks "hotel/internal/domains/booking/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *ancillaryMocks.MockAncillary
	bookings *bookingMocks.MockBooking
	svc      service.Ancillary
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := ancillaryMocks.NewMockAncillary(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)

	return fixture{
		repo:     repo,
		bookings: bookings,
		svc:      service.New(repo, bookings, otelMocks.NewOtel()),
	}
}

func createRequest() dto.CreateServiceRequest {
	return dto.CreateServiceRequest{
		BookingID:   3,
		ServiceName: gofakeit.RandomString([]string{"Breakfast", "Spa", "Airport transfer"}),
		ServiceCost: 25.5,
	}
}

func TestAncillaryService_Create(t *testing.T) {
	t.Run("adds a service dated today", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest()

		f.bookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, svc model.Service) (int64, error) {
				assert.Equal(t, int64(3), svc.BookingID)
				assert.Equal(t, req.ServiceName, svc.ServiceName)
				assert.True(t, decimal.RequireFromString("25.50").Equal(svc.ServiceCost))
				assert.Equal(t, timezone.Now().Format(time.DateOnly), svc.ServiceDate.Format(time.DateOnly))

				return 8, nil
			})

		res, err := f.svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, dto.CreateServiceResponse{ID: 8, Message: "Service added successfully"}, res)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "booking not found", err.Error())
	})

	t.Run("booking removed before insert", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: "23503"})

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestAncillaryService_GetAll(t *testing.T) {
	t.Run("filters by booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Service, error) {
				assert.Equal(t, "services.service_date", params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
				require.Len(t, filter.Filters, 1)
				assert.Equal(t, model.FieldBookingID, filter.Filters[0].(gDto.Filter).Field)

				return []model.Service{{
					ID:          1,
					BookingID:   3,
					ServiceName: "Breakfast",
					ServiceCost: decimal.RequireFromString("12.5"),
					ServiceDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				}}, nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, 3)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "2024-01-02", res[0].ServiceDate)
		assert.Equal(t, "12.50", res[0].ServiceCost.StringFixed(2))
	})

	t.Run("every service when no booking is given", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).
			Return(nil, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, 0)

		require.NoError(t, err)
		assert.Empty(t, res)
	})
}
