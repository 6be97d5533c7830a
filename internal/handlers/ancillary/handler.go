package ancillary

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/ancillary/model"
	"hotel/internal/domains/ancillary/model/dto"
	"hotel/internal/domains/ancillary/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const sortableColumns = "omitempty,oneof=service_date service_name service_cost"

type Handler struct {
	service service.Ancillary
	otel    otel.Otel
}

func New(service service.Ancillary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/", handler.GetServices)
	})
}

// CreateService charges an extra service to a booking.
// @Summary Add a service to a booking
// @Tags Service
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.CreateServiceResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/services [post]
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	var req dto.CreateServiceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bookingID", req.BookingID).Msg("failed to add service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetServices lists services, optionally for one booking.
// @Summary Get services
// @Tags Service
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query int false "Booking ID"
// @Success 200 {array} dto.ServiceResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	if err := validator.ValidateVar(queryParams.SortBy, sortableColumns); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var bookingID int64

	if raw := r.URL.Query().Get(model.FieldBookingID); raw != constant.Empty {
		id, err := shared.ConvertStringToID(raw)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("invalid booking_id parameter"))

			return
		}

		bookingID = id
	}

	services, err := handler.service.GetAll(ctx, queryParams, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, services)
}
