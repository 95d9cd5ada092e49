package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Identity.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Identity.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	service := strings.TrimSpace(req.Service)
	if service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if len(service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service is too long", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateNotPast проверяет, что момент записи не в прошлом.
// Прошлые даты отклоняются целиком, для сегодняшней даты сравнивается время слота.
// Отклоняются только строго прошедшие моменты: слот, начинающийся
// в текущую минуту, ещё принимается
func validateNotPast(date time.Time, startTime types.TimeString, now time.Time) error {
	today := now.Format(domain.DateFormat)
	target := date.Format(domain.DateFormat)

	if target < today {
		return ErrPastDate
	}

	if target == today {
		if startTime.IsBefore(types.NewTimeString(now)) {
			return ErrPastDate
		}
	}

	return nil
}
