package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
	appointmentRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/appointment"
	"github.com/alexisrr11/turnos-service/internal/service/appointments/models"
)

// Service сервис жизненного цикла записей: просмотр, отмена, завершение
type Service struct {
	repo AppointmentRepository
	tp   TimeProvider
	log  Logger
}

func New(repo AppointmentRepository, tp TimeProvider, log Logger) *Service {
	return &Service{
		repo: repo,
		tp:   tp,
		log:  log,
	}
}

// GetByID возвращает запись по идентификатору.
// Обычный пользователь видит только свои записи, админ - любые записи своего бизнеса
func (s *Service) GetByID(ctx context.Context, requester domain.Identity, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.getOwned(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomain(appt), nil
}

// GetUserAppointments возвращает записи пользователя, опционально по статусу
func (s *Service) GetUserAppointments(ctx context.Context, requester domain.Identity, userID int64, status *domain.AppointmentStatus) ([]*models.AppointmentResponse, error) {
	if !requester.CanManage(userID, requester.BusinessID) {
		return nil, ErrAccessDenied
	}
	if status != nil && !domain.ValidStatus(*status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}

	appts, err := s.repo.GetByUserID(ctx, requester.BusinessID, userID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserAppointments - failed to get appointments: %v", ErrInternal, err)
	}

	return models.FromDomainList(appts), nil
}

// GetBusinessAppointments возвращает записи бизнеса по фильтру. Только администратор
func (s *Service) GetBusinessAppointments(ctx context.Context, requester domain.Identity, req *models.BusinessAppointmentsRequest) ([]*models.AppointmentResponse, error) {
	if !requester.IsAdmin() || !requester.SameBusiness(req.BusinessID) {
		return nil, ErrAccessDenied
	}
	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	appts, err := s.repo.GetByBusinessWithFilter(ctx, domain.AppointmentsFilter{
		BusinessID:      req.BusinessID,
		UserID:          req.UserID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          req.Status,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessAppointments - failed to get appointments: %v", ErrInternal, err)
	}

	return models.FromDomainList(appts), nil
}

// Cancel отменяет активную запись.
// Владелец может отменить не позднее чем за 24 часа до начала,
// администратор бизнеса отменяет без ограничения по сроку
func (s *Service) Cancel(ctx context.Context, requester domain.Identity, id int64, reason string) (*models.AppointmentResponse, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > domain.MaxMotiveLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	appt, err := s.getOwned(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if !appt.IsActive() {
		return nil, ErrAlreadyFinalized
	}

	if !requester.IsAdmin() {
		startsAt, err := appt.StartsAt()
		if err != nil {
			return nil, fmt.Errorf("%w: Cancel - invalid appointment time: %v", ErrInternal, err)
		}
		if startsAt.Sub(s.tp.Now()) < domain.CancellationNoticeHours*time.Hour {
			return nil, ErrCancellationWindowClosed
		}
	}

	if err := s.repo.Cancel(ctx, id, reason); err != nil {
		// запись успели финализировать между чтением и обновлением
		if errors.Is(err, appointmentRepo.ErrNoActiveAppointment) {
			return nil, ErrAlreadyFinalized
		}
		return nil, fmt.Errorf("%w: Cancel - failed to cancel appointment: %v", ErrInternal, err)
	}

	s.log.Info("appointments.service: user %d cancelled appointment %d", requester.UserID, id)

	return s.GetByID(ctx, requester, id)
}

// Complete помечает запись завершённой. Только администратор бизнеса.
// Повторное завершение идемпотентно, завершение отменённой записи отклоняется
func (s *Service) Complete(ctx context.Context, requester domain.Identity, id int64) (*models.AppointmentResponse, error) {
	if !requester.IsAdmin() {
		return nil, ErrAccessDenied
	}

	appt, err := s.getOwned(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if appt.IsCompleted() {
		return models.FromDomain(appt), nil
	}
	if appt.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}

	if err := s.repo.Complete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrNoActiveAppointment) {
			return nil, ErrAlreadyFinalized
		}
		return nil, fmt.Errorf("%w: Complete - failed to complete appointment: %v", ErrInternal, err)
	}

	s.log.Info("appointments.service: admin %d completed appointment %d", requester.UserID, id)

	return s.GetByID(ctx, requester, id)
}

// getOwned читает запись и проверяет права доступа requester к ней
func (s *Service) getOwned(ctx context.Context, requester domain.Identity, id int64) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to get appointment %d: %v", ErrInternal, id, err)
	}

	if !requester.CanManage(appt.UserID, appt.BusinessID) {
		// не раскрываем существование чужой записи
		return nil, ErrNotFound
	}

	return appt, nil
}
