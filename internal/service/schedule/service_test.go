package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisrr11/turnos-service/internal/domain"
	scheduleRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/schedule"
	"github.com/alexisrr11/turnos-service/internal/service/schedule/models"
)

type fakeConfigRepo struct {
	config     *domain.ScheduleConfig
	getErr     error
	created    *domain.ScheduleConfig
	updated    *domain.ScheduleConfig
	createsErr error
}

func (f *fakeConfigRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.config, nil
}

func (f *fakeConfigRepo) CreateDefaults(_ context.Context, cfg *domain.ScheduleConfig) error {
	if f.createsErr != nil {
		return f.createsErr
	}
	f.created = cfg
	f.config = cfg
	f.getErr = nil
	return nil
}

func (f *fakeConfigRepo) Update(_ context.Context, cfg *domain.ScheduleConfig) error {
	f.updated = cfg
	f.config = cfg
	return nil
}

type fakeOverrideRepo struct {
	blocked   map[string]bool
	unblocked map[string]bool
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{
		blocked:   map[string]bool{},
		unblocked: map[string]bool{},
	}
}

func (f *fakeOverrideRepo) UpsertBlock(_ context.Context, businessID int64, date time.Time, motive string) (*domain.BlockedDay, error) {
	f.blocked[date.Format(domain.DateFormat)] = true
	return &domain.BlockedDay{ID: 1, BusinessID: businessID, Date: date, Motive: motive, Active: true}, nil
}

func (f *fakeOverrideRepo) UpsertUnblock(_ context.Context, businessID int64, date time.Time, motive string) (*domain.UnblockedDay, error) {
	f.unblocked[date.Format(domain.DateFormat)] = true
	return &domain.UnblockedDay{ID: 1, BusinessID: businessID, Date: date, Motive: motive, Active: true}, nil
}

func (f *fakeOverrideRepo) HasActiveBlock(_ context.Context, _ int64, date time.Time) (bool, error) {
	return f.blocked[date.Format(domain.DateFormat)], nil
}

func (f *fakeOverrideRepo) HasActiveUnblock(_ context.Context, _ int64, date time.Time) (bool, error) {
	return f.unblocked[date.Format(domain.DateFormat)], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func admin(businessID int64) domain.Identity {
	return domain.Identity{UserID: 1, BusinessID: businessID, Role: domain.RoleAdmin}
}

func monFriConfig(businessID int64) *domain.ScheduleConfig {
	cfg := domain.DefaultScheduleConfig(businessID)
	cfg.ID = 1
	return cfg
}

func TestService_GetOrCreate_CreatesDefaultsOnFirstUse(t *testing.T) {
	configs := &fakeConfigRepo{getErr: scheduleRepo.ErrConfigNotFound}
	svc := New(configs, newFakeOverrideRepo(), nopLogger{})

	cfg, err := svc.GetOrCreate(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultOpenTime, cfg.OpenTime)
	assert.NotNil(t, configs.created, "defaults must be persisted")
}

func TestService_IsOpen_Precedence(t *testing.T) {
	// 2026-09-15 вторник, 2026-09-13 воскресенье
	tuesday := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		block   bool
		unblock bool
		want    bool
	}{
		{"weekday enabled and no overrides", tuesday, false, false, true},
		{"weekday disabled and no overrides", sunday, false, false, false},
		{"block closes an enabled weekday", tuesday, true, false, false},
		{"unblock overrides a block", tuesday, true, true, true},
		{"unblock opens a disabled weekday", sunday, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := newFakeOverrideRepo()
			key := tt.date.Format(domain.DateFormat)
			overrides.blocked[key] = tt.block
			overrides.unblocked[key] = tt.unblock

			svc := New(&fakeConfigRepo{config: monFriConfig(2)}, overrides, nopLogger{})

			open, err := svc.IsOpen(context.Background(), 2, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, open)
		})
	}
}

func TestService_UpdateConfig_RejectsEmptySlotSet(t *testing.T) {
	svc := New(&fakeConfigRepo{config: monFriConfig(2)}, newFakeOverrideRepo(), nopLogger{})

	_, err := svc.UpdateConfig(context.Background(), admin(2), 2, &models.UpdateConfigRequest{
		OpenTime:            "10:00",
		CloseTime:           "10:30",
		SlotDurationMinutes: 60,
		Weekdays:            [7]bool{false, true, true, true, true, true, false},
	})

	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestService_UpdateConfig_RejectsNonAdmin(t *testing.T) {
	svc := New(&fakeConfigRepo{config: monFriConfig(2)}, newFakeOverrideRepo(), nopLogger{})

	user := domain.Identity{UserID: 5, BusinessID: 2, Role: domain.RoleUser}
	_, err := svc.UpdateConfig(context.Background(), user, 2, &models.UpdateConfigRequest{})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UpdateConfig_RejectsForeignBusiness(t *testing.T) {
	svc := New(&fakeConfigRepo{config: monFriConfig(2)}, newFakeOverrideRepo(), nopLogger{})

	_, err := svc.UpdateConfig(context.Background(), admin(99), 2, &models.UpdateConfigRequest{})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UpdateConfig_Success(t *testing.T) {
	configs := &fakeConfigRepo{config: monFriConfig(2)}
	svc := New(configs, newFakeOverrideRepo(), nopLogger{})

	resp, err := svc.UpdateConfig(context.Background(), admin(2), 2, &models.UpdateConfigRequest{
		OpenTime:            "08:00",
		CloseTime:           "14:00",
		SlotDurationMinutes: 30,
		Weekdays:            [7]bool{false, true, true, true, true, true, true},
	})
	require.NoError(t, err)

	assert.Equal(t, "08:00", resp.OpenTime)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
	assert.Len(t, resp.Slots, 12)
	require.NotNil(t, configs.updated)
}

func TestService_BlockDay_AdminOnly(t *testing.T) {
	svc := New(&fakeConfigRepo{config: monFriConfig(2)}, newFakeOverrideRepo(), nopLogger{})

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	user := domain.Identity{UserID: 5, BusinessID: 2, Role: domain.RoleUser}

	_, err := svc.BlockDay(context.Background(), user, 2, date, "inventario")
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.BlockDay(context.Background(), admin(2), 2, date, "inventario")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", resp.Date)
}
