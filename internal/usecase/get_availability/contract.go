package get_availability

import (
	"context"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByBusinessWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	GetOrCreate(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
	IsOpen(ctx context.Context, businessID int64, date time.Time) (bool, error)
}

// HolidayClient интерфейс клиента календаря праздников.
// Для чтения используется деградирующий вариант: при недоступности
// источника день считается обычным
type HolidayClient interface {
	IsHolidayWithGracefulDegradation(ctx context.Context, date time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
