package get_appointment

import (
	"context"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, requester domain.Identity, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
