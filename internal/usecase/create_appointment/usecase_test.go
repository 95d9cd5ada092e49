package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisrr11/turnos-service/internal/domain"
	appointmentRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/appointment"
	holidayClient "github.com/alexisrr11/turnos-service/internal/integrations/holidayapi"
)

// --- фейки ---

type fakeAppointmentRepo struct {
	activeCount int
	countErr    error
	createErr   error
	created     *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = 42
	appt.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.created = appt
	return appt, nil
}

func (f *fakeAppointmentRepo) CountActiveInRange(_ context.Context, _, _ int64, _, _ time.Time) (int, error) {
	return f.activeCount, f.countErr
}

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	return f.business, f.err
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

type fakeScheduleService struct {
	config  *domain.ScheduleConfig
	open    bool
	openErr error
}

func (f *fakeScheduleService) GetOrCreate(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	return f.config, nil
}

func (f *fakeScheduleService) IsOpen(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return f.open, f.openErr
}

type fakeHolidayClient struct {
	holiday bool
	err     error
}

func (f *fakeHolidayClient) IsHoliday(_ context.Context, _ time.Time) (bool, error) {
	return f.holiday, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- сборка ---

type fixture struct {
	appts    *fakeAppointmentRepo
	business *fakeBusinessRepo
	users    *fakeUserRepo
	schedule *fakeScheduleService
	holidays *fakeHolidayClient
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appts: &fakeAppointmentRepo{},
		business: &fakeBusinessRepo{
			business: &domain.Business{
				ID:          2,
				Name:        "Barber",
				TrialEndsAt: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
				Active:      true,
			},
		},
		users: &fakeUserRepo{
			user: &domain.User{ID: 1, BusinessID: 2, Name: "Ana", Surname: "Diaz"},
		},
		schedule: &fakeScheduleService{
			config: &domain.ScheduleConfig{
				BusinessID:          2,
				OpenTime:            "09:00",
				CloseTime:           "18:00",
				SlotDurationMinutes: 60,
			},
			open: true,
		},
		holidays: &fakeHolidayClient{},
	}

	f.uc = NewUseCase(f.appts, f.business, f.users, f.schedule, f.holidays, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	return f
}

func validRequest() *Request {
	return &Request{
		Identity:  domain.Identity{UserID: 1, BusinessID: 2, Role: domain.RoleUser},
		Service:   "corte de pelo",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
}

// --- тесты ---

func TestCreateAppointment_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, "Ana", resp.ClientName)
	assert.Equal(t, "Diaz", resp.ClientSurname)

	require.NotNil(t, f.appts.created)
	assert.Equal(t, int64(2), f.appts.created.BusinessID)
	assert.Equal(t, domain.StatusActive, f.appts.created.Status)
}

func TestCreateAppointment_BusinessInactive(t *testing.T) {
	f := newFixture()
	f.business.business.Active = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessInactive)
}

func TestCreateAppointment_TrialExpired(t *testing.T) {
	f := newFixture()
	f.business.business.TrialEndsAt = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessInactive)
}

func TestCreateAppointment_NotASlot(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = "10:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCreateAppointment_PastDate(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreateAppointment_SameDayEarlierSlot(t *testing.T) {
	f := newFixture()

	// сейчас 12:00, слот 10:00 того же дня уже прошёл
	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreateAppointment_ClosedDay(t *testing.T) {
	f := newFixture()
	f.schedule.open = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestCreateAppointment_Holiday(t *testing.T) {
	f := newFixture()
	f.holidays.holiday = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHoliday)
}

func TestCreateAppointment_HolidayCalendarDown(t *testing.T) {
	f := newFixture()
	f.holidays.err = holidayClient.ErrUpstreamUnavailable

	// создание не деградирует: лучше отказать, чем записать на закрытый день
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHolidayUnavailable)
}

func TestCreateAppointment_QuotaExceeded(t *testing.T) {
	f := newFixture()
	f.appts.activeCount = domain.MaxActiveAppointmentsPerWeek

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestCreateAppointment_AdminBypassesQuota(t *testing.T) {
	f := newFixture()
	f.appts.activeCount = 100

	req := validRequest()
	req.Identity.Role = domain.RoleAdmin

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	f := newFixture()
	f.appts.createErr = appointmentRepo.ErrSlotTaken

	// проигравший гонку получает конфликт без ретраев
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}
