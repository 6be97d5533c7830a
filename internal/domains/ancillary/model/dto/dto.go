package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/ancillary/model"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	BookingID   int64   `json:"booking_id"   validate:"required,gt=0"`
	ServiceName string  `json:"service_name" validate:"required,max=100"`
	ServiceCost float64 `json:"service_cost" validate:"required,gt=0"`
}

func (c *CreateServiceRequest) ToModel(serviceDate time.Time) model.Service {
	return model.Service{
		BookingID:   c.BookingID,
		ServiceName: strings.TrimSpace(c.ServiceName),
		ServiceCost: gDto.MoneyFromFloat(c.ServiceCost),
		ServiceDate: bookingModel.CalendarDate(serviceDate),
	}
}

type CreateServiceResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ServiceResponse struct {
	ID          int64           `json:"id"`
	BookingID   int64           `json:"booking_id"`
	ServiceName string          `json:"service_name"`
	ServiceCost decimal.Decimal `json:"service_cost" swaggertype:"number"`
	ServiceDate string          `json:"service_date"`
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.ServiceName = model.ServiceName
	r.ServiceCost = model.ServiceCost.Round(constant.CurrencyPrecision)
	r.ServiceDate = model.ServiceDate.Format(constant.DateOnlyFormat)
}

func FromModels(models []model.Service) []ServiceResponse {
	services := make([]ServiceResponse, len(models))
	for i, mod := range models {
		services[i].FromModel(mod)
	}

	return services
}
