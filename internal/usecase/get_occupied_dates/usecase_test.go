package get_occupied_dates

import (
	"context"
	"errors"
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
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appts, nil
}

type fakeConfigProvider struct {
	config *domain.ScheduleConfig
}

func (f *fakeConfigProvider) GetOrCreate(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	return f.config, nil
}

type fakeOverrideRepo struct {
	blocked   []time.Time
	unblocked []time.Time
}

func (f *fakeOverrideRepo) ListActiveBlockDates(_ context.Context, _ int64, _, _ time.Time) ([]time.Time, error) {
	return f.blocked, nil
}

func (f *fakeOverrideRepo) ListActiveUnblockDates(_ context.Context, _ int64, _, _ time.Time) ([]time.Time, error) {
	return f.unblocked, nil
}

type fakeHolidayClient struct {
	holidays []string
	err      error
}

func (f *fakeHolidayClient) HolidaysForYear(_ context.Context, _ int) ([]string, error) {
	return f.holidays, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- сборка ---

type fixture struct {
	appts     *fakeAppointmentRepo
	overrides *fakeOverrideRepo
	holidays  *fakeHolidayClient
	uc        *UseCase
}

// newFixture собирает бизнес с двумя слотами в день (09:00, 10:00),
// работающий с понедельника по пятницу
func newFixture() *fixture {
	f := &fixture{
		appts:     &fakeAppointmentRepo{},
		overrides: &fakeOverrideRepo{},
		holidays:  &fakeHolidayClient{},
	}

	config := &domain.ScheduleConfig{
		BusinessID:          2,
		OpenTime:            "09:00",
		CloseTime:           "11:00",
		SlotDurationMinutes: 60,
		Weekdays: [7]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
		},
	}

	f.uc = NewUseCase(f.appts, &fakeConfigProvider{config: config}, f.overrides, f.holidays, nopLogger{})
	return f
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func appointmentAt(date, startTime string) *domain.Appointment {
	return &domain.Appointment{
		BusinessID: 2,
		UserID:     1,
		Date:       day(date),
		StartTime:  types.TimeString(startTime),
		Status:     domain.StatusActive,
	}
}

// запрос с понедельника 2026-09-07
func request() *Request {
	return &Request{BusinessID: 2, From: day("2026-09-07")}
}

// --- тесты ---

func TestGetOccupiedDates_Window(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, "2026-09-07", resp.From)
	assert.Equal(t, "2026-11-05", resp.To)
	assert.Empty(t, resp.Occupied)

	// рабочие дни открыты, выходные нет
	assert.Contains(t, resp.Available, "2026-09-07")
	assert.Contains(t, resp.Available, "2026-09-11")
	assert.NotContains(t, resp.Available, "2026-09-12")
	assert.NotContains(t, resp.Available, "2026-09-13")
}

func TestGetOccupiedDates_OverridePrecedence(t *testing.T) {
	f := newFixture()
	// вторник заблокирован вручную, суббота разблокирована
	f.overrides.blocked = []time.Time{day("2026-09-08")}
	f.overrides.unblocked = []time.Time{day("2026-09-12")}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.NotContains(t, resp.Available, "2026-09-08")
	assert.Contains(t, resp.Available, "2026-09-12")
}

func TestGetOccupiedDates_HolidayClosesUnblockedDay(t *testing.T) {
	f := newFixture()
	f.overrides.unblocked = []time.Time{day("2026-09-12")}
	f.holidays.holidays = []string{"2026-09-12", "2026-09-14"}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	// праздник закрывает и разблокированную субботу, и обычный понедельник
	assert.NotContains(t, resp.Available, "2026-09-12")
	assert.NotContains(t, resp.Available, "2026-09-14")
	assert.Contains(t, resp.Available, "2026-09-15")
}

func TestGetOccupiedDates_FullyBookedDateHasNoRoom(t *testing.T) {
	f := newFixture()
	f.appts.appts = []*domain.Appointment{
		appointmentAt("2026-09-07", "09:00"),
		appointmentAt("2026-09-07", "10:00"),
		appointmentAt("2026-09-08", "09:00"),
	}

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	// оба слота понедельника заняты, во вторнике остался один
	assert.NotContains(t, resp.Available, "2026-09-07")
	assert.Contains(t, resp.Available, "2026-09-08")

	assert.Equal(t, []OccupiedEntry{
		{Date: "2026-09-07", StartTime: "09:00"},
		{Date: "2026-09-07", StartTime: "10:00"},
		{Date: "2026-09-08", StartTime: "09:00"},
	}, resp.Occupied)
}

func TestGetOccupiedDates_HolidaySourceDown(t *testing.T) {
	f := newFixture()
	f.holidays.err = errors.New("connection refused")

	resp, err := f.uc.Execute(context.Background(), request())
	require.NoError(t, err)

	// недоступный календарь праздников не прерывает выдачу
	assert.Contains(t, resp.Available, "2026-09-07")
}

func TestGetOccupiedDates_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BusinessID: 0, From: day("2026-09-07")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{BusinessID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
