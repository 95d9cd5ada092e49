package get_occupied_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/ptr"
)

// UseCase use case для календаря занятости: занятые слоты окна
// и даты, на которые ещё можно записаться
type UseCase struct {
	appointmentRepo AppointmentRepository
	configProvider  ScheduleConfigProvider
	overrideRepo    OverrideRepository
	holidayClient   HolidayClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configProvider ScheduleConfigProvider,
	overrideRepo OverrideRepository,
	holidayClient HolidayClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configProvider:  configProvider,
		overrideRepo:    overrideRepo,
		holidayClient:   holidayClient,
		logger:          logger,
	}
}

// Execute выполняет use case календаря занятости.
// Доступность каждой даты решается пакетно: блокировки и разблокировки окна
// читаются одним запросом, праздники берутся из годового кеша.
// При недоступности календаря праздников выдача деградирует до обычных дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() {
		return nil, fmt.Errorf("%w: from date is required", ErrInvalidInput)
	}

	from := req.From
	to := from.AddDate(0, 0, HorizonDays-1)

	// 1. Конфигурация бизнеса
	config, err := uc.configProvider.GetOrCreate(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetOccupiedDates: failed to get config for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}
	slotsPerDay := len(config.Slots())

	// 2. Активные записи окна
	appts, err := uc.appointmentRepo.GetByBusinessWithFilter(ctx, domain.AppointmentsFilter{
		BusinessID: req.BusinessID,
		StartDate:  ptr.Ptr(from),
		EndDate:    ptr.Ptr(to),
		Status:     ptr.Ptr(domain.StatusActive),
	})
	if err != nil {
		uc.logger.Error("GetOccupiedDates: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	occupied := make([]OccupiedEntry, 0, len(appts))
	perDate := make(map[string]int, len(appts))
	for _, a := range appts {
		date := a.Date.Format(domain.DateFormat)
		occupied = append(occupied, OccupiedEntry{Date: date, StartTime: a.StartTime.String()})
		perDate[date]++
	}

	// 3. Блокировки и разблокировки окна одним запросом на каждую таблицу
	blocked, err := uc.listDates(ctx, uc.overrideRepo.ListActiveBlockDates, req.BusinessID, from, to)
	if err != nil {
		uc.logger.Error("GetOccupiedDates: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked dates: %v", ErrInternal, err)
	}
	unblocked, err := uc.listDates(ctx, uc.overrideRepo.ListActiveUnblockDates, req.BusinessID, from, to)
	if err != nil {
		uc.logger.Error("GetOccupiedDates: failed to list unblocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list unblocked dates: %v", ErrInternal, err)
	}

	// 4. Праздники годов окна
	holidays := uc.holidaysInWindow(ctx, from, to)

	resp := &Response{
		BusinessID: req.BusinessID,
		From:       from.Format(domain.DateFormat),
		To:         to.Format(domain.DateFormat),
		Occupied:   occupied,
		Available:  []string{},
	}

	// 5. Проход по окну: разблокировка > блокировка > недельное расписание.
	// Праздник закрывает день независимо от разблокировок, как и при создании записи
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(domain.DateFormat)

		open := config.IsWeekdayEnabled(d.Weekday())
		if blocked[date] {
			open = false
		}
		if unblocked[date] {
			open = true
		}
		if holidays[date] {
			open = false
		}

		if open && perDate[date] < slotsPerDay {
			resp.Available = append(resp.Available, date)
		}
	}

	return resp, nil
}

func (uc *UseCase) listDates(
	ctx context.Context,
	list func(ctx context.Context, businessID int64, from, to time.Time) ([]time.Time, error),
	businessID int64,
	from, to time.Time,
) (map[string]bool, error) {
	dates, err := list(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(dates))
	for _, d := range dates {
		out[d.Format(domain.DateFormat)] = true
	}
	return out, nil
}

// holidaysInWindow собирает праздники годов, пересекающих окно.
// Ошибка источника не прерывает выдачу: календарь без праздников
// лучше, чем недоступный календарь
func (uc *UseCase) holidaysInWindow(ctx context.Context, from, to time.Time) map[string]bool {
	out := make(map[string]bool)
	for year := from.Year(); year <= to.Year(); year++ {
		dates, err := uc.holidayClient.HolidaysForYear(ctx, year)
		if err != nil {
			uc.logger.Warn("GetOccupiedDates: holidays for year %d unavailable: %v", year, err)
			continue
		}
		for _, d := range dates {
			out[d] = true
		}
	}
	return out
}
