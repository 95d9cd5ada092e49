package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexisrr11/turnos-service/internal/domain"
	appointmentRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/appointment"
	businessRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/business"
	userRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/user"
	holidayClient "github.com/alexisrr11/turnos-service/internal/integrations/holidayapi"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	businessRepo    BusinessRepository
	userRepo        UserRepository
	scheduleService ScheduleService
	holidayClient   HolidayClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businessRepo BusinessRepository,
	userRepo UserRepository,
	scheduleService ScheduleService,
	holidayClient HolidayClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		businessRepo:    businessRepo,
		userRepo:        userRepo,
		scheduleService: scheduleService,
		holidayClient:   holidayClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Гонку за слот разрешает частичный уникальный индекс по активным записям:
// проигравшая вставка получает ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, business=%d, date=%s, time=%s",
		req.Identity.UserID, req.Identity.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что бизнес существует и операционен
	business, err := uc.businessRepo.GetByID(ctx, req.Identity.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%d not found", req.Identity.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business id=%d: %v", req.Identity.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.IsOperational(now) {
		uc.logger.Warn("CreateAppointment: business id=%d is not operational", business.ID)
		return nil, ErrBusinessInactive
	}

	// 4. Получаем конфигурацию и проверяем принадлежность слота
	config, err := uc.scheduleService.GetOrCreate(ctx, business.ID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get config for business id=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}
	if !config.HasSlot(req.StartTime) {
		uc.logger.Warn("CreateAppointment: time %s is not a slot of business id=%d", req.StartTime, business.ID)
		return nil, ErrInvalidSlot
	}

	// 5. Запись в прошлое не допускается
	if err := validateNotPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: past date %s %s rejected", req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	// 6. Доступность дня: разблокировка > блокировка > недельное расписание
	open, err := uc.scheduleService.IsOpen(ctx, business.ID, req.Date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to resolve availability: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve day availability: %v", ErrInternal, err)
	}
	if !open {
		uc.logger.Info("CreateAppointment: business id=%d is closed on %s", business.ID, req.Date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}

	// 7. Праздники. При недоступности календаря создание отклоняется,
	// чтобы не записать клиента на закрытый день
	holiday, err := uc.holidayClient.IsHoliday(ctx, req.Date)
	if err != nil {
		if errors.Is(err, holidayClient.ErrUpstreamUnavailable) {
			uc.logger.Error("CreateAppointment: holiday calendar unavailable: %v", err)
			return nil, ErrHolidayUnavailable
		}
		uc.logger.Error("CreateAppointment: holiday check failed: %v", err)
		return nil, fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
	}
	if holiday {
		uc.logger.Info("CreateAppointment: %s is a public holiday", req.Date.Format(domain.DateFormat))
		return nil, ErrHoliday
	}

	// 8. Данные клиента денормализуются в запись
	user, err := uc.userRepo.GetByID(ctx, req.Identity.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", req.Identity.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 9. Квота и вставка в одной транзакции
	var created *domain.Appointment
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		// Недельная квота не распространяется на администраторов
		if !req.Identity.IsAdmin() {
			weekStart, weekEnd := domain.WeekBounds(req.Date)
			count, err := uc.appointmentRepo.CountActiveInRange(ctx, business.ID, req.Identity.UserID, weekStart, weekEnd)
			if err != nil {
				return fmt.Errorf("%w: failed to count weekly appointments: %v", ErrInternal, err)
			}
			if count >= domain.MaxActiveAppointmentsPerWeek {
				return ErrQuotaExceeded
			}
		}

		appt, err := uc.appointmentRepo.Create(ctx, &domain.Appointment{
			BusinessID:    business.ID,
			UserID:        req.Identity.UserID,
			ClientName:    user.Name,
			ClientSurname: user.Surname,
			Service:       strings.TrimSpace(req.Service),
			Date:          req.Date,
			StartTime:     req.StartTime,
			Status:        domain.StatusActive,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		created = appt
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			uc.logger.Warn("CreateAppointment: user id=%d exceeded weekly quota", req.Identity.UserID)
		} else if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken for business id=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, business.ID)
		} else {
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for user id=%d", created.ID, created.UserID)

	return toResponse(created), nil
}
