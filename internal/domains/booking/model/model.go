package model

import (
	"time"

	customerModel "hotel/internal/domains/customer/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCustomerID      = "customer_id"
	FieldRoomID          = "room_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldTotalAmount     = "total_amount"
	FieldBookingStatus   = "booking_status"
	FieldSpecialRequests = "special_requests"
)

type Booking struct {
	ID              int64           `db:"id"`
	CustomerID      int64           `db:"customer_id"`
	RoomID          int64           `db:"room_id"`
	CheckInDate     time.Time       `db:"check_in_date"`
	CheckOutDate    time.Time       `db:"check_out_date"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	BookingStatus   Status          `db:"booking_status"`
	SpecialRequests string          `db:"special_requests"`
	model.Metadata
}

// BookingDetail is a booking joined with the guest and room it refers to.
type BookingDetail struct {
	Booking
	FirstName  string `db:"first_name"  table:"customers"`
	LastName   string `db:"last_name"   table:"customers"`
	Email      string `db:"email"       table:"customers"`
	RoomNumber string `db:"room_number" table:"rooms"`
	RoomType   string `db:"room_type"   table:"rooms"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN " + customerModel.TableName + " ON " + TableName + "." + FieldCustomerID + " = " + customerModel.TableName + "." + customerModel.FieldID +
		" JOIN " + roomModel.TableName + " ON " + TableName + "." + FieldRoomID + " = " + roomModel.TableName + "." + roomModel.FieldID
}
