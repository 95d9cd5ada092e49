package models

import (
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// AppointmentResponse запись для выдачи наружу
type AppointmentResponse struct {
	ID            int64      `json:"id"`
	BusinessID    int64      `json:"businessId"`
	UserID        int64      `json:"userId"`
	ClientName    string     `json:"clientName"`
	ClientSurname string     `json:"clientSurname"`
	Service       string     `json:"service"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	Status        string     `json:"status"`
	CancelReason  *string    `json:"cancellationReason,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// BusinessAppointmentsRequest фильтр выборки записей бизнеса
type BusinessAppointmentsRequest struct {
	BusinessID      int64
	UserID          *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *domain.AppointmentStatus
	IncludeInactive bool
}

// FromDomain конвертирует доменную запись в DTO
func FromDomain(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            a.ID,
		BusinessID:    a.BusinessID,
		UserID:        a.UserID,
		ClientName:    a.ClientName,
		ClientSurname: a.ClientSurname,
		Service:       a.Service,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.StartTime.String(),
		Status:        string(a.Status),
		CancelReason:  a.CancellationReason,
		CancelledAt:   a.CancelledAt,
		CreatedAt:     a.CreatedAt,
	}
}

// FromDomainList конвертирует список доменных записей в DTO
func FromDomainList(appts []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, FromDomain(a))
	}
	return out
}
