package get_user_appointments

import (
	"context"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetUserAppointments(ctx context.Context, requester domain.Identity, userID int64, status *domain.AppointmentStatus) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
