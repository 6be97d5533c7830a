package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	CustomerID      int64  `json:"customer_id"      validate:"required,gt=0"`
	RoomID          int64  `json:"room_id"          validate:"required,gt=0"`
	CheckInDate     string `json:"check_in_date"    validate:"required,date"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,date"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

// Stay parses both dates. Dates have already passed the `date` validation tag.
func (c *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.ParseDate(c.CheckOutDate)

	return checkIn, checkOut, err
}

// ToModel builds a pending booking for the given stay and amount.
func (c *CreateBookingRequest) ToModel(checkIn, checkOut time.Time, total decimal.Decimal) model.Booking {
	return model.Booking{
		CustomerID:      c.CustomerID,
		RoomID:          c.RoomID,
		CheckInDate:     model.CalendarDate(checkIn),
		CheckOutDate:    model.CalendarDate(checkOut),
		TotalAmount:     total,
		BookingStatus:   model.StatusPending,
		SpecialRequests: strings.TrimSpace(c.SpecialRequests),
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type CreateBookingResponse struct {
	ID          int64           `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"number"`
	Message     string          `json:"message"`
}

type StatusChangeResponse struct {
	ID            int64        `json:"id"`
	BookingStatus model.Status `json:"booking_status" swaggertype:"string"`
	Message       string       `json:"message"`
}

type BookingResponse struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customer_id"`
	RoomID          int64           `json:"room_id"`
	CheckInDate     string          `json:"check_in_date"`
	CheckOutDate    string          `json:"check_out_date"`
	TotalAmount     decimal.Decimal `json:"total_amount"     swaggertype:"number"`
	BookingStatus   model.Status    `json:"booking_status"   swaggertype:"string"`
	SpecialRequests string          `json:"special_requests"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	RoomNumber      string          `json:"room_number"`
	RoomType        string          `json:"room_type"`
	gDto.Metadata
}

// FromModel renders DATE columns as they are stored, without timezone conversion.
func (r *BookingResponse) FromModel(detail model.BookingDetail) {
	r.ID = detail.ID
	r.CustomerID = detail.CustomerID
	r.RoomID = detail.RoomID
	r.CheckInDate = detail.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = detail.CheckOutDate.Format(constant.DateOnlyFormat)
	r.TotalAmount = detail.TotalAmount.Round(constant.CurrencyPrecision)
	r.BookingStatus = detail.BookingStatus
	r.SpecialRequests = detail.SpecialRequests
	r.FirstName = detail.FirstName
	r.LastName = detail.LastName
	r.Email = detail.Email
	r.RoomNumber = detail.RoomNumber
	r.RoomType = detail.RoomType
	r.Metadata.FromModel(detail.Metadata)
}

func FromModels(details []model.BookingDetail) []BookingResponse {
	bookings := make([]BookingResponse, len(details))
	for i, detail := range details {
		bookings[i].FromModel(detail)
	}

	return bookings
}
