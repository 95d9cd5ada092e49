package create_appointment

import (
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Identity  domain.Identity  // Кто создаёт запись
	Service   string           // Название услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64            // ID созданной записи
	BusinessID int64            // ID бизнеса
	UserID     int64            // ID пользователя
	Service    string           // Название услуги
	Date       time.Time        // Дата записи
	StartTime  types.TimeString // Время начала
	Status     string           // Статус записи

	// Денормализованные данные клиента
	ClientName    string
	ClientSurname string

	CreatedAt time.Time // Время создания
}

func toResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:            a.ID,
		BusinessID:    a.BusinessID,
		UserID:        a.UserID,
		Service:       a.Service,
		Date:          a.Date,
		StartTime:     a.StartTime,
		Status:        string(a.Status),
		ClientName:    a.ClientName,
		ClientSurname: a.ClientSurname,
		CreatedAt:     a.CreatedAt,
	}
}
