package get_occupied_dates

import (
	"context"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByBusinessWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleConfigProvider интерфейс получения конфигурации расписания
type ScheduleConfigProvider interface {
	GetOrCreate(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
}

// OverrideRepository интерфейс репозитория блокировок и разблокировок дат
type OverrideRepository interface {
	ListActiveBlockDates(ctx context.Context, businessID int64, from, to time.Time) ([]time.Time, error)
	ListActiveUnblockDates(ctx context.Context, businessID int64, from, to time.Time) ([]time.Time, error)
}

// HolidayClient интерфейс клиента календаря праздников
type HolidayClient interface {
	HolidaysForYear(ctx context.Context, year int) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
