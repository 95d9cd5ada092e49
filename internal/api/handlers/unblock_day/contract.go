package unblock_day

import (
	"context"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UnblockDay(ctx context.Context, requester domain.Identity, businessID int64, date time.Time, motive string) (*models.DayOverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
