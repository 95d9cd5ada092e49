package create_appointment

import (
	"context"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	CountActiveInRange(ctx context.Context, businessID, userID int64, startDate, endDate time.Time) (int, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	GetOrCreate(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
	IsOpen(ctx context.Context, businessID int64, date time.Time) (bool, error)
}

// HolidayClient интерфейс клиента календаря праздников.
// Здесь используется строгий вариант: при недоступности источника создание отклоняется
type HolidayClient interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
