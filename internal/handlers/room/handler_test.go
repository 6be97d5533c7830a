package room_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockRoomService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockRoomService(gomock.NewController(t))
	handler := room.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestCreateRoom(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CreateRoomRequest{
				RoomNumber:    "101",
				RoomType:      "single",
				PricePerNight: 100,
				Capacity:      1,
				Amenities:     "WiFi",
			}).
			Return(dto.CreateRoomResponse{
				RoomResponse: dto.RoomResponse{ID: 1, RoomNumber: "101", RoomType: "single", PricePerNight: decimal.NewFromInt(100), Capacity: 1, Amenities: "WiFi", IsAvailable: true},
				Message:      "Room created successfully",
			}, nil)

		recorder := serve(router, http.MethodPost, "/rooms",
			`{"room_number":"101","room_type":"single","price_per_night":100,"capacity":1,"amenities":"WiFi"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":1`)
		assert.Contains(t, recorder.Body.String(), `"price_per_night":100`)
		assert.Contains(t, recorder.Body.String(), `"message":"Room created successfully"`)
	})

	t.Run("missing field never reaches the service", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodPost, "/rooms", `{"room_number":"101","room_type":"single","price_per_night":100,"capacity":1}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"amenities is required"}`, recorder.Body.String())
	})

	t.Run("unknown room type", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodPost, "/rooms",
			`{"room_number":"101","room_type":"penthouse","price_per_night":100,"capacity":1,"amenities":"WiFi"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateRoomResponse{}, failure.BadRequestFromString("Room number already exists"))

		recorder := serve(router, http.MethodPost, "/rooms",
			`{"room_number":"101","room_type":"single","price_per_night":100,"capacity":1,"amenities":"WiFi"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"Room number already exists"}`, recorder.Body.String())
	})
}

func TestGetAvailableRooms(t *testing.T) {
	t.Run("lists rooms", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			GetAvailable(gomock.Any(), gomock.Any(), "suite").
			Return([]dto.RoomResponse{{ID: 4, RoomNumber: "401", RoomType: "suite", IsAvailable: true}}, nil)

		recorder := serve(router, http.MethodGet, "/rooms?room_type=suite", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, strings.HasPrefix(recorder.Body.String(), "["))
		assert.Contains(t, recorder.Body.String(), `"room_number":"401"`)
	})

	t.Run("rejects unknown sort column", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/rooms?sort_by=amenities%20DESC%2C%20id", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects unknown room type", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/rooms?room_type=penthouse", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetRoomByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, router := setup(t)

		recorder := serve(router, http.MethodGet, "/rooms/abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"invalid id parameter"}`, recorder.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), int64(9)).Return(dto.RoomResponse{}, failure.NotFound("room not found"))

		recorder := serve(router, http.MethodGet, "/rooms/9", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"room not found"}`, recorder.Body.String())
	})
}
