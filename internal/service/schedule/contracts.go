package schedule

import (
	"context"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
	CreateDefaults(ctx context.Context, cfg *domain.ScheduleConfig) error
	Update(ctx context.Context, cfg *domain.ScheduleConfig) error
}

// OverrideRepository интерфейс репозитория блокировок и разблокировок дат
type OverrideRepository interface {
	UpsertBlock(ctx context.Context, businessID int64, date time.Time, motive string) (*domain.BlockedDay, error)
	UpsertUnblock(ctx context.Context, businessID int64, date time.Time, motive string) (*domain.UnblockedDay, error)
	HasActiveBlock(ctx context.Context, businessID int64, date time.Time) (bool, error)
	HasActiveUnblock(ctx context.Context, businessID int64, date time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
