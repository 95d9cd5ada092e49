package create_appointment

import (
	"errors"
	"net/http"

	"github.com/alexisrr11/turnos-service/internal/api/handlers"
	"github.com/alexisrr11/turnos-service/internal/api/middleware"
	createAppointment "github.com/alexisrr11/turnos-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBusinessNotFound   = "бизнес не найден"
	msgBusinessInactive   = "бизнес неактивен или пробный период истёк"
	msgInvalidSlot        = "выбранное время не является слотом расписания"
	msgPastDate           = "нельзя записаться на прошедшую дату"
	msgBusinessClosed     = "бизнес закрыт в выбранную дату"
	msgHoliday            = "выбранная дата является праздничным днём"
	msgHolidayUnavailable = "календарь праздников временно недоступен, попробуйте позже"
	msgQuotaExceeded      = "превышен недельный лимит активных записей"
	msgSlotTaken          = "слот уже занят"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidRequestBody)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createAppointment.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createAppointment.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createAppointment.ErrBusinessInactive):
			handlers.RespondForbidden(w, msgBusinessInactive)

		case errors.Is(err, createAppointment.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createAppointment.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrBusinessClosed):
			handlers.RespondConflict(w, msgBusinessClosed)

		case errors.Is(err, createAppointment.ErrHoliday):
			handlers.RespondConflict(w, msgHoliday)

		case errors.Is(err, createAppointment.ErrHolidayUnavailable):
			handlers.RespondServiceUnavailable(w, msgHolidayUnavailable)

		case errors.Is(err, createAppointment.ErrQuotaExceeded):
			handlers.RespondConflict(w, msgQuotaExceeded)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, user_id=%d",
		result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
