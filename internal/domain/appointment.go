package domain

import (
	"time"

	"github.com/alexisrr11/turnos-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusActive    AppointmentStatus = "active"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ValidStatus returns true if s is a known appointment status
func ValidStatus(s AppointmentStatus) bool {
	return s == StatusActive || s == StatusCancelled || s == StatusCompleted
}

// Appointment represents a booked time slot in the system
type Appointment struct {
	ID         int64
	BusinessID int64
	UserID     int64

	// Denormalized client data, copied from the user at creation
	ClientName    string
	ClientSurname string

	Service   string
	Date      time.Time
	StartTime types.TimeString
	Status    AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusActive
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted returns true if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// StartsAt returns the scheduled moment of the appointment
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.StartTime.At(a.Date)
}

// AppointmentsFilter фильтр для выборки записей бизнеса
type AppointmentsFilter struct {
	BusinessID      int64              // Обязательный параметр
	UserID          *int64             // Фильтр по пользователю (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и завершённые записи
}
