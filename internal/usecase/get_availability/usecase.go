package get_availability

import (
	"context"
	"fmt"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/ptr"
)

// UseCase use case для получения занятых и свободных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleService ScheduleService
	holidayClient   HolidayClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleService ScheduleService,
	holidayClient HolidayClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleService: scheduleService,
		holidayClient:   holidayClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности.
// Занятые слоты показываются и для закрытого дня, свободные - только для открытого
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Конфигурация бизнеса
	config, err := uc.scheduleService.GetOrCreate(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get config for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// 2. Активные записи на дату
	appts, err := uc.appointmentRepo.GetByBusinessWithFilter(ctx, domain.AppointmentsFilter{
		BusinessID: req.BusinessID,
		StartDate:  ptr.Ptr(req.Date),
		EndDate:    ptr.Ptr(req.Date),
		Status:     ptr.Ptr(domain.StatusActive),
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	occupied := make(map[string]bool, len(appts))
	occupiedList := make([]string, 0, len(appts))
	for _, a := range appts {
		occupied[a.StartTime.String()] = true
		occupiedList = append(occupiedList, a.StartTime.String())
	}

	resp := &Response{
		BusinessID: req.BusinessID,
		Date:       req.Date.Format(domain.DateFormat),
		Occupied:   occupiedList,
		Available:  []string{},
	}

	// 3. Закрытый день: блокировка, выключенный день недели или праздник
	open, err := uc.scheduleService.IsOpen(ctx, req.BusinessID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve availability: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve day availability: %v", ErrInternal, err)
	}
	if open && uc.holidayClient.IsHolidayWithGracefulDegradation(ctx, req.Date) {
		open = false
	}
	if !open {
		return resp, nil
	}

	resp.Open = true
	for _, slot := range config.Slots() {
		if !occupied[slot.String()] {
			resp.Available = append(resp.Available, slot.String())
		}
	}

	return resp, nil
}
