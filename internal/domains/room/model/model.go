package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldAmenities     = "amenities"
	FieldIsAvailable   = "is_available"
)

const (
	TypeSingle = "single"
	TypeDouble = "double"
	TypeSuite  = "suite"
	TypeDeluxe = "deluxe"
)

type Room struct {
	ID            int64           `db:"id"`
	RoomNumber    string          `db:"room_number"`
	RoomType      string          `db:"room_type"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Capacity      int             `db:"capacity"`
	Amenities     string          `db:"amenities"`
	IsAvailable   bool            `db:"is_available"`
	model.Metadata
}
