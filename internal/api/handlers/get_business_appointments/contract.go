package get_business_appointments

import (
	"context"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetBusinessAppointments(ctx context.Context, requester domain.Identity, req *models.BusinessAppointmentsRequest) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
