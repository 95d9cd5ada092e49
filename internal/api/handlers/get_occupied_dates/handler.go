package get_occupied_dates

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/alexisrr11/turnos-service/internal/api/handlers"
	"github.com/alexisrr11/turnos-service/internal/domain"
	getOccupiedDates "github.com/alexisrr11/turnos-service/internal/usecase/get_occupied_dates"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidFrom       = "некорректный формат параметра from, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetOccupiedDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupiedDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/occupied-dates
// Query params: from (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/occupied-dates - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	from := time.Now().Truncate(24 * time.Hour)
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err = time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getOccupiedDates.Request{
		BusinessID: businessID,
		From:       from,
	})
	if err != nil {
		h.logger.Error("GET /businesses/{id}/occupied-dates - Failed: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
