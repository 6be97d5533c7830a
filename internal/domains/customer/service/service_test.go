package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/infras/otel/mocks"
	customerMocks "hotel/internal/domains/customer/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fakeRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     "  Guest.Name@Example.COM ",
		Phone:     gofakeit.Numerify("+62##########"),
		Address:   gofakeit.Street(),
	}
}

func TestCustomerService_Create(t *testing.T) {
	t.Run("returns the generated numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := customerMocks.NewMockCustomer(ctrl)
		svc := service.New(repo, mocks.NewOtel())
		req := fakeRequest()

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "guest.name@example.com", args[model.FieldEmail])

				return false, nil
			})
		repo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, customer model.Customer) (int64, error) {
				assert.Equal(t, req.FirstName, customer.FirstName)
				assert.Equal(t, "guest.name@example.com", customer.Email)

				return 17, nil
			})

		res, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, int64(17), res.ID)
		assert.Equal(t, "Customer created successfully", res.Message)
	})

	t.Run("repeat guest with the same email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := customerMocks.NewMockCustomer(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(context.Background(), fakeRequest())

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Email already exists", err.Error())
	})

	t.Run("unique violation at insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := customerMocks.NewMockCustomer(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: "23505"})

		_, err := svc.Create(context.Background(), fakeRequest())

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := customerMocks.NewMockCustomer(ctrl)
		svc := service.New(repo, mocks.NewOtel())

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		_, err := svc.Create(context.Background(), fakeRequest())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(21, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
			assert.Equal(t, "customers.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Customer{{ID: 2, Email: "b@example.com"}, {ID: 1, Email: "a@example.com"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "")

	require.NoError(t, err)
	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	require.Len(t, res.Customers, 2)
	assert.Equal(t, int64(2), res.Customers[0].ID)
}

func TestCustomerService_GetAllByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	matchesEmail := func(filter gDto.FilterGroup) {
		where, args := filter.GetWhereClause()
		assert.Equal(t, "(customers.email = :email)", where)
		assert.Equal(t, "ana@example.com", args["email"])
	}

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			matchesEmail(filter)

			return 1, nil
		})
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Customer, error) {
			matchesEmail(filter)

			return []model.Customer{{ID: 4, Email: "ana@example.com"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, " Ana@Example.com ")

	require.NoError(t, err)
	require.Len(t, res.Customers, 1)
	assert.Equal(t, int64(4), res.Customers[0].ID)
}
