package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number"     validate:"required,max=10"`
	RoomType      string  `json:"room_type"       validate:"required,oneof=single double suite deluxe"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int     `json:"capacity"        validate:"required,gt=0"`
	Amenities     string  `json:"amenities"       validate:"required"`
}

// ToModel builds a bookable room. The price is rounded to cents.
func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		PricePerNight: gDto.MoneyFromFloat(c.PricePerNight),
		Capacity:      c.Capacity,
		Amenities:     c.Amenities,
		IsAvailable:   true,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type RoomResponse struct {
	ID            int64           `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	PricePerNight decimal.Decimal `json:"price_per_night" swaggertype:"number"`
	Capacity      int             `json:"capacity"`
	Amenities     string          `json:"amenities"`
	IsAvailable   bool            `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.PricePerNight = model.PricePerNight.Round(constant.CurrencyPrecision)
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type CreateRoomResponse struct {
	RoomResponse
	Message string `json:"message"`
}

func FromModels(models []model.Room) []RoomResponse {
	rooms := make([]RoomResponse, len(models))
	for i, mod := range models {
		rooms[i].FromModel(mod)
	}

	return rooms
}
