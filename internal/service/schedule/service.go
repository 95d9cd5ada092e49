package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	scheduleRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/schedule"
	"github.com/alexisrr11/turnos-service/internal/service/schedule/models"
)

// Service сервис расписания: конфигурация бизнеса, блокировки дат
// и вычисление доступности дня
type Service struct {
	configRepo   ConfigRepository
	overrideRepo OverrideRepository
	log          Logger
}

func New(configRepo ConfigRepository, overrideRepo OverrideRepository, log Logger) *Service {
	return &Service{
		configRepo:   configRepo,
		overrideRepo: overrideRepo,
		log:          log,
	}
}

// GetOrCreate возвращает конфигурацию бизнеса, создавая дефолтную при первом обращении.
// Конкурентное создание безопасно: вставка идемпотентна, после неё читаем ещё раз
func (s *Service) GetOrCreate(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error) {
	cfg, err := s.configRepo.GetByBusinessID(ctx, businessID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetOrCreate - failed to get config: %v", ErrInternal, err)
	}

	defaults := domain.DefaultScheduleConfig(businessID)
	if err := s.configRepo.CreateDefaults(ctx, defaults); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - failed to create defaults: %v", ErrInternal, err)
	}

	cfg, err = s.configRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - failed to re-read config: %v", ErrInternal, err)
	}

	s.log.Info("schedule.service: created default config for business %d", businessID)

	return cfg, nil
}

// GetConfig возвращает конфигурацию бизнеса в виде DTO
func (s *Service) GetConfig(ctx context.Context, businessID int64) (*models.ConfigResponse, error) {
	cfg, err := s.GetOrCreate(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return models.ConfigFromDomain(cfg), nil
}

// UpdateConfig обновляет конфигурацию бизнеса. Только администратор бизнеса.
// Конфигурация, не порождающая ни одного слота, отклоняется
func (s *Service) UpdateConfig(ctx context.Context, requester domain.Identity, businessID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	if !requester.IsAdmin() || !requester.SameBusiness(businessID) {
		return nil, ErrAccessDenied
	}

	cfg, err := req.ToDomain(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateConfig - %v", ErrInvalidInput, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	// конфигурация должна существовать до обновления
	if _, err := s.GetOrCreate(ctx, businessID); err != nil {
		return nil, err
	}

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return nil, fmt.Errorf("%w: UpdateConfig - failed to update config: %v", ErrInternal, err)
	}

	updated, err := s.configRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateConfig - failed to re-read config: %v", ErrInternal, err)
	}

	s.log.Info("schedule.service: updated config for business %d: %s-%s, %d min",
		businessID, updated.OpenTime, updated.CloseTime, updated.SlotDurationMinutes)

	return models.ConfigFromDomain(updated), nil
}

// IsOpen решает, принимает ли бизнес записи на дату.
// Приоритет: ручная разблокировка > ручная блокировка > недельное расписание
func (s *Service) IsOpen(ctx context.Context, businessID int64, date time.Time) (bool, error) {
	unblocked, err := s.overrideRepo.HasActiveUnblock(ctx, businessID, date)
	if err != nil {
		return false, fmt.Errorf("%w: IsOpen - failed to check unblock: %v", ErrInternal, err)
	}
	if unblocked {
		return true, nil
	}

	blocked, err := s.overrideRepo.HasActiveBlock(ctx, businessID, date)
	if err != nil {
		return false, fmt.Errorf("%w: IsOpen - failed to check block: %v", ErrInternal, err)
	}
	if blocked {
		return false, nil
	}

	cfg, err := s.GetOrCreate(ctx, businessID)
	if err != nil {
		return false, err
	}

	return cfg.IsWeekdayEnabled(date.Weekday()), nil
}

// BlockDay закрывает дату вручную. Только администратор бизнеса.
// Повторная блокировка той же даты обновляет причину
func (s *Service) BlockDay(ctx context.Context, requester domain.Identity, businessID int64, date time.Time, motive string) (*models.DayOverrideResponse, error) {
	if !requester.IsAdmin() || !requester.SameBusiness(businessID) {
		return nil, ErrAccessDenied
	}

	motive, err := validateOverride(date, motive)
	if err != nil {
		return nil, err
	}

	block, err := s.overrideRepo.UpsertBlock(ctx, businessID, date, motive)
	if err != nil {
		return nil, fmt.Errorf("%w: BlockDay - failed to upsert block: %v", ErrInternal, err)
	}

	s.log.Info("schedule.service: business %d blocked %s", businessID, date.Format(domain.DateFormat))

	return models.BlockFromDomain(block), nil
}

// UnblockDay открывает дату вручную. Только администратор бизнеса
func (s *Service) UnblockDay(ctx context.Context, requester domain.Identity, businessID int64, date time.Time, motive string) (*models.DayOverrideResponse, error) {
	if !requester.IsAdmin() || !requester.SameBusiness(businessID) {
		return nil, ErrAccessDenied
	}

	motive, err := validateOverride(date, motive)
	if err != nil {
		return nil, err
	}

	unblock, err := s.overrideRepo.UpsertUnblock(ctx, businessID, date, motive)
	if err != nil {
		return nil, fmt.Errorf("%w: UnblockDay - failed to upsert unblock: %v", ErrInternal, err)
	}

	s.log.Info("schedule.service: business %d unblocked %s", businessID, date.Format(domain.DateFormat))

	return models.UnblockFromDomain(unblock), nil
}

func validateConfig(cfg *domain.ScheduleConfig) error {
	if err := cfg.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid open time: %v", ErrInvalidInput, err)
	}
	if err := cfg.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid close time: %v", ErrInvalidInput, err)
	}
	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if len(cfg.Slots()) == 0 {
		return fmt.Errorf("%w: no slot fits between %s and %s", ErrInvalidConfiguration, cfg.OpenTime, cfg.CloseTime)
	}
	return nil
}

func validateOverride(date time.Time, motive string) (string, error) {
	if date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	motive = strings.TrimSpace(motive)
	if len(motive) > domain.MaxMotiveLength {
		return "", fmt.Errorf("%w: motive is too long", ErrInvalidInput)
	}
	return motive, nil
}
