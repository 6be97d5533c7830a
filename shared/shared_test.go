package shared_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/dto"

	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit equals total",
			total:    10,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestConvertStringToID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "plain number", input: "42", expected: 42},
		{name: "surrounding spaces", input: " 7 ", expected: 7},
		{name: "zero rejected", input: "0", wantErr: true},
		{name: "negative rejected", input: "-3", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %d", tt.input, result)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		fieldID string
		table   string
	}{
		{name: "qualified by table", id: 123, fieldID: "id", table: "rooms"},
		{name: "without table", id: 456, fieldID: "booking_id", table: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			expected := dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    tt.fieldID,
						Value:    tt.id,
						Operator: dto.FilterOperatorEq,
						Table:    tt.table,
					},
				},
			}

			if !reflect.DeepEqual(result, expected) {
				t.Errorf("expected %+v, got %+v", expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("rooms"); key != "rooms" {
		t.Errorf("expected rooms, got %s", key)
	}

	if key := shared.BuildCacheKey("rooms", "available", "1"); key != "rooms:available:1" {
		t.Errorf("expected rooms:available:1, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 20, SortBy: "room_number", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "is_available", Value: true, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "room_type", Value: "suite", Operator: dto.FilterOperatorEq},
		},
	}

	key := shared.BuildCacheKeyWithQuery("rooms", params, filter)
	expected := "rooms:2:20:room_number:ASC:is_available=true:room_type=suite"

	if key != expected {
		t.Errorf("expected %s, got %s", expected, key)
	}

	if again := shared.BuildCacheKeyWithQuery("rooms", params, filter); again != key {
		t.Errorf("expected stable key, got %s and %s", key, again)
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "rooms:*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "rooms")

	redisCache.EXPECT().Clear(gomock.Any(), "rooms:*").Return(errors.New("redis: connection refused"))
	shared.InvalidateCaches(context.Background(), redisCache, "rooms")
}

func boolPtr(b bool) *bool {
	return &b
}
