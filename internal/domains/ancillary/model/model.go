package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldServiceName = "service_name"
	FieldServiceCost = "service_cost"
	FieldServiceDate = "service_date"
)

// Service is an extra charged against a booking, such as breakfast or a spa visit.
type Service struct {
	ID          int64           `db:"id"`
	BookingID   int64           `db:"booking_id"`
	ServiceName string          `db:"service_name"`
	ServiceCost decimal.Decimal `db:"service_cost"`
	ServiceDate time.Time       `db:"service_date"`
}
