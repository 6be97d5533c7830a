package dto_test

import (
	"testing"

	"hotel/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "room_type", Operator: dto.FilterOperatorEq, Value: "suite", Table: "rooms"},
			wantWhere: "rooms.room_type = :room_type",
			wantArgs:  map[string]any{"room_type": "suite"},
		},
		{
			name:      "not eq",
			filter:    dto.Filter{Field: "booking_status", Operator: dto.FilterOperatorNotEq, Value: "cancelled"},
			wantWhere: "booking_status != :booking_status",
			wantArgs:  map[string]any{"booking_status": "cancelled"},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "email", Operator: dto.FilterOperatorLike, Value: "ann"},
			wantWhere: "LOWER(email) LIKE LOWER(:email)",
			wantArgs:  map[string]any{"email": "%ann%"},
		},
		{
			name:      "in expands a slice",
			filter:    dto.Filter{Field: "booking_status", Operator: dto.FilterOperatorIn, Value: []string{"pending", "confirmed"}, Table: "bookings"},
			wantWhere: "bookings.booking_status IN (:booking_status_0, :booking_status_1)",
			wantArgs:  map[string]any{"booking_status_0": "pending", "booking_status_1": "confirmed"},
		},
		{
			name:      "in binds a scalar",
			filter:    dto.Filter{Field: "id", Operator: dto.FilterOperatorIn, Value: "1); DROP TABLE rooms; --"},
			wantWhere: "id IN (:id_0)",
			wantArgs:  map[string]any{"id_0": "1); DROP TABLE rooms; --"},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "id", Operator: dto.FilterOperatorIn, Value: []int64{}},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Operator: "between", Value: 1},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("joins with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "a", Operator: dto.FilterOperatorEq, Value: 1},
				dto.Filter{Field: "b", Operator: dto.FilterOperatorEq, Value: 2},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(a = :a OR b = :b)", where)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, args)
	})

	t.Run("defaults to AND and nests groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "a", Operator: dto.FilterOperatorEq, Value: 1},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "b", Operator: dto.FilterOperatorEq, Value: 2},
						dto.Filter{Field: "c", Operator: dto.FilterOperatorEq, Value: 3},
					},
				},
			},
		}

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(a = :a AND (b = :b OR c = :c))", where)
	})

	t.Run("skips empty clauses and unknown entries", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				"not a filter",
				dto.Filter{Field: "a", Operator: "between", Value: 1},
				dto.FilterGroup{},
			},
		}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}
