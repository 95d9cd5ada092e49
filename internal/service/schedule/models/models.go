package models

import (
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/types"
)

// ConfigResponse конфигурация расписания бизнеса для выдачи наружу
type ConfigResponse struct {
	BusinessID          int64    `json:"businessId"`
	OpenTime            string   `json:"openTime"`
	CloseTime           string   `json:"closeTime"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	Weekdays            [7]bool  `json:"weekdays"`
	Slots               []string `json:"slots"`
}

// UpdateConfigRequest запрос на обновление конфигурации расписания
type UpdateConfigRequest struct {
	OpenTime            string  `json:"openTime"`
	CloseTime           string  `json:"closeTime"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	Weekdays            [7]bool `json:"weekdays"`
}

// DayOverrideResponse блокировка или разблокировка даты
type DayOverrideResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	Date       string    `json:"date"`
	Motive     string    `json:"motive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ConfigFromDomain конвертирует доменную конфигурацию в DTO
func ConfigFromDomain(cfg *domain.ScheduleConfig) *ConfigResponse {
	slots := cfg.Slots()
	strs := make([]string, 0, len(slots))
	for _, s := range slots {
		strs = append(strs, s.String())
	}

	return &ConfigResponse{
		BusinessID:          cfg.BusinessID,
		OpenTime:            cfg.OpenTime.String(),
		CloseTime:           cfg.CloseTime.String(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		Weekdays:            cfg.Weekdays,
		Slots:               strs,
	}
}

// BlockFromDomain конвертирует блокировку даты в DTO
func BlockFromDomain(b *domain.BlockedDay) *DayOverrideResponse {
	return &DayOverrideResponse{
		ID:         b.ID,
		BusinessID: b.BusinessID,
		Date:       b.Date.Format(domain.DateFormat),
		Motive:     b.Motive,
		CreatedAt:  b.CreatedAt,
	}
}

// UnblockFromDomain конвертирует разблокировку даты в DTO
func UnblockFromDomain(u *domain.UnblockedDay) *DayOverrideResponse {
	return &DayOverrideResponse{
		ID:         u.ID,
		BusinessID: u.BusinessID,
		Date:       u.Date.Format(domain.DateFormat),
		Motive:     u.Motive,
		CreatedAt:  u.CreatedAt,
	}
}

// ToDomain собирает доменную конфигурацию из запроса
func (r *UpdateConfigRequest) ToDomain(businessID int64) (*domain.ScheduleConfig, error) {
	open, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleConfig{
		BusinessID:          businessID,
		OpenTime:            open,
		CloseTime:           close,
		SlotDurationMinutes: r.SlotDurationMinutes,
		Weekdays:            r.Weekdays,
	}, nil
}
