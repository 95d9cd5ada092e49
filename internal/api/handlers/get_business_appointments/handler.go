package get_business_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/alexisrr11/turnos-service/internal/api/handlers"
	"github.com/alexisrr11/turnos-service/internal/api/middleware"
	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/internal/service/appointments"
	"github.com/alexisrr11/turnos-service/internal/service/appointments/models"
	"github.com/alexisrr11/turnos-service/pkg/ptr"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidUserID     = "некорректный ID пользователя"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter     = "некорректные параметры фильтра"
	msgAccessDenied      = "доступно только администратору бизнеса"
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

// Handle GET /api/v1/businesses/{businessId}/appointments
// Query params: userId, from, to, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}

	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/appointments - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	req := &models.BusinessAppointmentsRequest{BusinessID: businessID}
	query := r.URL.Query()

	if s := query.Get("userId"); s != "" {
		userID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		req.UserID = ptr.Ptr(userID)
	}

	if s := query.Get("from"); s != "" {
		from, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = ptr.Ptr(from)
	}

	if s := query.Get("to"); s != "" {
		to, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = ptr.Ptr(to)
	}

	if s := query.Get("status"); s != "" {
		req.Status = ptr.Ptr(domain.AppointmentStatus(s))
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetBusinessAppointments(r.Context(), identity, req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /businesses/{id}/appointments - Failed: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{Appointments: result})
}

// ListResponse HTTP response model
type ListResponse struct {
	Appointments []*models.AppointmentResponse `json:"appointments"`
}
