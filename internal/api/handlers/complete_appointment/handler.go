package complete_appointment

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
	msgAppointmentNotFound  = "запись не найдена"
	msgAccessDenied         = "доступно только администратору бизнеса"
	msgAlreadyCancelled     = "нельзя завершить отменённую запись"
	msgAlreadyFinalized     = "запись уже отменена или завершена"
)

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

// Handle POST /api/v1/appointments/{appointmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAppointmentNotFound)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/complete - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.Complete(r.Context(), identity, id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, appointments.ErrNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, appointments.ErrAlreadyFinalized):
			handlers.RespondConflict(w, msgAlreadyFinalized)

		default:
			h.logger.Error("POST /appointments/{id}/complete - Failed: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/complete - Appointment completed: appointment_id=%d, admin_id=%d",
		id, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
