package diagnostic_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/diagnostic/mocks"
	"hotel/internal/domains/diagnostic/model/dto"
	"hotel/internal/handlers/diagnostic"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockDiagnosticService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockDiagnosticService(gomock.NewController(t))
	handler := diagnostic.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestHealth(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Health(gomock.Any()).Return(dto.HealthResponse{
		Status:    "OK",
		Message:   "Hotel Booking API is running",
		Timestamp: "2024-01-01T00:00:00Z",
		Version:   "1.0.0",
	})

	recorder := get(router, "/health")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"status":"OK","message":"Hotel Booking API is running","timestamp":"2024-01-01T00:00:00Z","version":"1.0.0"}`,
		recorder.Body.String())
}

func TestDatabaseStatus(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().DatabaseStatus(gomock.Any()).Return(dto.DatabaseStatusResponse{
			Status:     "OK",
			Connection: dto.Connection{Host: "localhost", Database: "hotel", User: "postgres"},
		}, nil)

		recorder := get(router, "/database/status")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"connection":{"host":"localhost","database":"hotel","user":"postgres"}`)
	})

	t.Run("unreachable", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().DatabaseStatus(gomock.Any()).Return(dto.DatabaseStatusResponse{}, errors.New("connection refused"))

		recorder := get(router, "/database/status")

		var body dto.ErrorResponse

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "ERROR", body.Status)
		assert.Equal(t, "Database connection failed", body.Message)
		assert.Equal(t, "connection refused", body.Error)
		assert.NotEmpty(t, body.Timestamp)
	})
}

func TestDatabaseTables(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Tables(gomock.Any()).Return(dto.TablesResponse{
		Status: "OK",
		Tables: []dto.TableResponse{{TableName: "rooms", TableRows: 4}},
	}, nil)

	recorder := get(router, "/database/tables")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"tables":[{"TABLE_NAME":"rooms","TABLE_ROWS":4}]`)
}

func TestStatistics(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Statistics(gomock.Any()).Return(dto.StatisticsResponse{
		Status: "OK",
		Statistics: map[string]any{
			"totalRooms":     3,
			"totalCustomers": dto.StatisticError{Error: "timeout"},
		},
	})

	recorder := get(router, "/stats")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"totalRooms":3`)
	assert.Contains(t, recorder.Body.String(), `"totalCustomers":{"error":"timeout"}`)
}
