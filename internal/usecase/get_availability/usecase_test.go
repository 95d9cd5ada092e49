package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/types"
)

// --- фейки ---

type fakeAppointmentRepo struct {
	appts []*domain.Appointment
	err   error
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appts, f.err
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
	calls   int
}

func (f *fakeHolidayClient) IsHolidayWithGracefulDegradation(_ context.Context, _ time.Time) bool {
	f.calls++
	return f.holiday
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- сборка ---

type fixture struct {
	appts    *fakeAppointmentRepo
	schedule *fakeScheduleService
	holidays *fakeHolidayClient
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		appts: &fakeAppointmentRepo{},
		schedule: &fakeScheduleService{
			config: &domain.ScheduleConfig{
				BusinessID:          2,
				OpenTime:            "09:00",
				CloseTime:           "12:00",
				SlotDurationMinutes: 60,
			},
			open: true,
		},
		holidays: &fakeHolidayClient{},
	}

	f.uc = NewUseCase(f.appts, f.schedule, f.holidays, nopLogger{})
	return f
}

func request() *Request {
	return &Request{
		BusinessID: 2,
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	}
}

func appointmentAt(startTime string) *domain.Appointment {
	return &domain.Appointment{
		ID:         10,
		BusinessID: 2,
		UserID:     1,
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString(startTime),
		Status:     domain.StatusActive,
	}
}

// --- тесты ---

func TestGetAvailability_OpenDay(t *testing.T) {
	f := newFixture()
	f.appts.appts = []*domain.Appointment{appointmentAt("10:00")}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, resp.Open)
	assert.Equal(t, []string{"10:00"}, resp.Occupied)
	assert.Equal(t, []string{"09:00", "11:00"}, resp.Available)
}

func TestGetAvailability_Holiday(t *testing.T) {
	f := newFixture()
	f.holidays.holiday = true
	f.appts.appts = []*domain.Appointment{appointmentAt("10:00")}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	// праздник закрывает день, но уже занятые слоты видны
	assert.False(t, resp.Open)
	assert.Empty(t, resp.Available)
	assert.Equal(t, []string{"10:00"}, resp.Occupied)
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	f := newFixture()
	f.schedule.open = false
	f.appts.appts = []*domain.Appointment{appointmentAt("09:00")}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.False(t, resp.Open)
	assert.Empty(t, resp.Available)
	assert.Equal(t, []string{"09:00"}, resp.Occupied)

	// для закрытого дня календарь праздников не опрашивается
	assert.Zero(t, f.holidays.calls)
}

func TestGetAvailability_FullyBooked(t *testing.T) {
	f := newFixture()
	f.appts.appts = []*domain.Appointment{
		appointmentAt("09:00"),
		appointmentAt("10:00"),
		appointmentAt("11:00"),
	}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, resp.Open)
	assert.Empty(t, resp.Available)
	assert.Len(t, resp.Occupied, 3)
}

func TestGetAvailability_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BusinessID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{BusinessID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
