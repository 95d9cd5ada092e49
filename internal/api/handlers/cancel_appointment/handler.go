package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/alexisrr11/turnos-service/internal/api/handlers"
	"github.com/alexisrr11/turnos-service/internal/api/middleware"
	"github.com/alexisrr11/turnos-service/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgAppointmentNotFound  = "запись не найдена"
	msgAlreadyFinalized     = "запись уже отменена или завершена"
	msgWindowClosed         = "до начала записи осталось меньше 24 часов, отмена недоступна"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	Reason string `json:"reason"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAppointmentNotFound)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Тело с причиной опционально
	var req CancelRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /appointments/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.service.Cancel(r.Context(), identity, id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, appointments.ErrNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAlreadyFinalized):
			handlers.RespondConflict(w, msgAlreadyFinalized)

		case errors.Is(err, appointments.ErrCancellationWindowClosed):
			handlers.RespondConflict(w, msgWindowClosed)

		default:
			h.logger.Error("POST /appointments/{id}/cancel - Failed: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/cancel - Appointment cancelled: appointment_id=%d, user_id=%d",
		id, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
