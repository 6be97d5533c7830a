package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON_WritesPayloadUnwrapped(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]any{"id": 7, "message": "Customer created successfully"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"id":7,"message":"Customer created successfully"}`, recorder.Body.String())
}

func TestWithJSON_Array(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, []string{})

	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithMessage(recorder, http.StatusOK, "Booking confirmed successfully")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Booking confirmed successfully"}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "failure keeps its code",
			err:  failure.RoomNotAvailable,
			code: http.StatusConflict,
			body: `{"error":"room not available"}`,
		},
		{
			name: "wrapped failure",
			err:  fmt.Errorf("create booking: %w", failure.NotFound("customer not found")),
			code: http.StatusNotFound,
			body: `{"error":"create booking: customer not found"}`,
		},
		{
			name: "plain error is internal",
			err:  errors.New("connection reset by peer"),
			code: http.StatusInternalServerError,
			body: `{"error":"connection reset by peer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}

func TestDefaultResponses(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithRequestLimitExceeded(recorder)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	recorder = httptest.NewRecorder()
	response.WithPreparingShutdown(recorder)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	recorder = httptest.NewRecorder()
	response.WithNotFound(recorder, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, recorder.Body.String())
}
