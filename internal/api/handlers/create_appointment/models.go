package create_appointment

import (
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	createAppointment "github.com/alexisrr11/turnos-service/internal/usecase/create_appointment"
	"github.com/alexisrr11/turnos-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Service   string `json:"service"`
	Date      string `json:"date"`      // "2026-09-15"
	StartTime string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	BusinessID    int64  `json:"businessId"`
	UserID        int64  `json:"userId"`
	ClientName    string `json:"clientName"`
	ClientSurname string `json:"clientSurname"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(identity domain.Identity) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Identity:  identity,
		Service:   r.Service,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		BusinessID:    resp.BusinessID,
		UserID:        resp.UserID,
		ClientName:    resp.ClientName,
		ClientSurname: resp.ClientSurname,
		Service:       resp.Service,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
