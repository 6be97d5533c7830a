package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"
)

type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=single double suite deluxe" json:"category"`
}

type stayRequest struct {
	CheckIn  string  `json:"check_in_date"  validate:"required,date"`
	CheckOut string  `json:"check_out_date" validate:"required,date"`
	Price    float64 `json:"price"          validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        interface{}
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "single",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Age:      25,
				Category: "single",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Age:      25,
				Category: "single",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      150,
				Category: "single",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "invalid",
			},
			expectError: true,
		},
		{
			name: "negative age",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      -1,
				Category: "single",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct[ValidTestStruct](tt.data.(*ValidTestStruct))

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "suite",
			tag:         "oneof=single double suite deluxe",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "penthouse",
			tag:         "oneof=single double suite deluxe",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","age":25,"category":"single"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","age":25,"category":"single"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		data     *ValidTestStruct
		expected string
	}{
		{
			name:     "required uses json field name",
			data:     &ValidTestStruct{Email: "guest@example.com", Category: "single"},
			expected: "name is required",
		},
		{
			name:     "email",
			data:     &ValidTestStruct{Name: "Ana", Email: "nope", Category: "single"},
			expected: "email must be a valid email address",
		},
		{
			name:     "oneof lists allowed values",
			data:     &ValidTestStruct{Name: "Ana", Email: "guest@example.com", Category: "penthouse"},
			expected: "category must be one of single double suite deluxe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if err == nil {
				t.Fatal("expected validation error")
			}

			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}

			if code := failure.GetCode(err); code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", code)
			}
		})
	}
}

func TestDateValidation(t *testing.T) {
	tests := []struct {
		name     string
		data     stayRequest
		expected string
	}{
		{
			name: "calendar dates",
			data: stayRequest{CheckIn: "2024-01-01", CheckOut: "2024-01-03", Price: 100},
		},
		{
			name: "rfc3339 timestamps",
			data: stayRequest{CheckIn: "2024-01-01T14:00:00Z", CheckOut: "2024-01-03T11:00:00+07:00", Price: 100},
		},
		{
			name:     "slash separated date",
			data:     stayRequest{CheckIn: "01/01/2024", CheckOut: "2024-01-03", Price: 100},
			expected: "check_in_date must be a date formatted as YYYY-MM-DD or RFC3339",
		},
		{
			name:     "missing check out",
			data:     stayRequest{CheckIn: "2024-01-01", Price: 100},
			expected: "check_out_date is required",
		},
		{
			name:     "zero price",
			data:     stayRequest{CheckIn: "2024-01-01", CheckOut: "2024-01-03"},
			expected: "price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expected == "" {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil || err.Error() != tt.expected {
				t.Errorf("expected %q, got %v", tt.expected, err)
			}
		})
	}
}

func TestValidateDecodeFailureIsBadRequest(t *testing.T) {
	var data stayRequest

	err := validator.Validate(strings.NewReader(`{"check_in_date":`), &data)
	if err == nil {
		t.Fatal("expected decode error")
	}

	if code := failure.GetCode(err); code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", code)
	}
}
