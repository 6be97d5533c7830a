package diagnostic

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/diagnostic/model/dto"
	"hotel/internal/domains/diagnostic/service"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgDatabaseDown = "Database connection failed"
	msgTablesFailed = "Failed to fetch table information"
)

type Handler struct {
	service service.Diagnostic
	otel    otel.Otel
}

func New(service service.Diagnostic, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
	router.Get("/database/status", handler.DatabaseStatus)
	router.Get("/database/tables", handler.DatabaseTables)
	router.Get("/stats", handler.Statistics)
}

// Health reports that the API process is up.
// @Summary API health
// @Tags Diagnostic
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.Health(r.Context()))
}

// DatabaseStatus checks database connectivity.
// @Summary Database connectivity
// @Tags Diagnostic
// @Produce json
// @Success 200 {object} dto.DatabaseStatusResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/database/status [get]
func (handler *Handler) DatabaseStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DatabaseStatus")
	defer scope.End()

	res, err := handler.service.DatabaseStatus(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database status check failed")

		withFailure(w, msgDatabaseDown, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DatabaseTables lists tables with their approximate row counts.
// @Summary Database tables
// @Tags Diagnostic
// @Produce json
// @Success 200 {object} dto.TablesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/database/tables [get]
func (handler *Handler) DatabaseTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DatabaseTables")
	defer scope.End()

	res, err := handler.service.Tables(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list database tables")

		withFailure(w, msgTablesFailed, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Statistics reports aggregate counts. A count that fails is returned as {"error": ...} under its key.
// @Summary System statistics
// @Tags Diagnostic
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Router /api/stats [get]
func (handler *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Statistics")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Statistics(ctx))
}

func withFailure(w http.ResponseWriter, message string, err error) {
	response.WithJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Status:    constant.StatusError,
		Message:   message,
		Error:     err.Error(),
		Timestamp: timezone.Now().Format(constant.DateFormat),
	})
}
