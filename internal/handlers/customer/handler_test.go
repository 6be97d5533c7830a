package customer_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/customer/mocks"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/handlers/customer"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockCustomerService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockCustomerService(gomock.NewController(t))
	handler := customer.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestCreateCustomer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CreateCustomerRequest{FirstName: "Ana", LastName: "Lima", Email: "ana@example.com"}).
			Return(dto.CreateCustomerResponse{ID: 3, Message: "Customer created successfully"}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/customers",
			strings.NewReader(`{"first_name":"Ana","last_name":"Lima","email":"ana@example.com"}`)))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.JSONEq(t, `{"id":3,"message":"Customer created successfully"}`, recorder.Body.String())
	})

	t.Run("invalid email", func(t *testing.T) {
		_, router := setup(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/customers",
			strings.NewReader(`{"first_name":"Ana","last_name":"Lima","email":"ana"}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"email must be a valid email address"}`, recorder.Body.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateCustomerResponse{}, failure.BadRequestFromString("Email already exists"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/customers",
			strings.NewReader(`{"first_name":"Ana","last_name":"Lima","email":"ana@example.com"}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetCustomers(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5}, "").
		Return(dto.GetCustomersResponse{Customers: []dto.CustomerResponse{{ID: 1}}, TotalPage: 2, TotalData: 6}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/customers?page=2&limit=5", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total_data":6`)
}

func TestGetCustomersByEmail(t *testing.T) {
	t.Run("email is passed through", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), "ana@example.com").
			Return(dto.GetCustomersResponse{Customers: []dto.CustomerResponse{{ID: 4, Email: "ana@example.com"}}, TotalPage: 1, TotalData: 1}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/customers?email=ana@example.com", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":4`)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, router := setup(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/customers?email=not-an-email", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
