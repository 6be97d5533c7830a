package model

import (
	"errors"
	"time"

	"hotel/shared/constant"

	"github.com/shopspring/decimal"
)

var ErrInvalidStay = errors.New("check_out_date must be after check_in_date")

// Nights counts calendar days between check-in and check-out, the same days a booking stores.
func Nights(checkIn, checkOut time.Time) (int, error) {
	in, out := CalendarDate(checkIn), CalendarDate(checkOut)
	if !out.After(in) {
		return 0, ErrInvalidStay
	}

	return int(out.Sub(in).Hours() / constant.HoursPerDay), nil
}

func TotalAmount(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(constant.CurrencyPrecision)
}

// CalendarDate keeps the day as seen in the application timezone, dropping the clock.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
