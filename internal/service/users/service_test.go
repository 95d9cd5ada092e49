package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexisrr11/turnos-service/internal/domain"
	businessRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/business"
	"github.com/alexisrr11/turnos-service/internal/service/users/models"
	"github.com/alexisrr11/turnos-service/pkg/ptr"
)

type fakeUserRepo struct {
	created *domain.User
	byEmail *domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	u.ID = 1
	u.CreatedAt = time.Now()
	f.created = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return f.byEmail, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.byEmail, nil
}

type fakeBusinessRepo struct {
	created  *domain.Business
	existing *domain.Business
}

func (f *fakeBusinessRepo) Create(_ context.Context, biz *domain.Business) (*domain.Business, error) {
	biz.ID = 7
	f.created = biz
	return biz, nil
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	if f.existing == nil {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return f.existing, nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTokens struct{}

func (fakeTokens) Issue(_, _ int64, _ string, _ time.Time) (string, error) {
	return "token", nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(usersRepo *fakeUserRepo, bizRepo *fakeBusinessRepo, now time.Time) *Service {
	return New(usersRepo, bizRepo, passthroughTx{}, fakeTokens{}, fixedTime{now: now}, nopLogger{})
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:         "Ana",
		Surname:      "Diaz",
		Email:        "ana@example.com",
		Password:     "secret-password",
		BusinessName: "Barber",
	}
}

func TestService_Register_BootstrapsBusiness(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	usersRepo := &fakeUserRepo{}
	bizRepo := &fakeBusinessRepo{}
	svc := newService(usersRepo, bizRepo, now)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	// первый зарегистрированный создаёт бизнес и становится его админом
	require.NotNil(t, bizRepo.created)
	assert.Equal(t, "Barber", bizRepo.created.Name)
	assert.True(t, bizRepo.created.Active)
	assert.Equal(t, now.AddDate(0, 0, domain.DefaultTrialDays), bizRepo.created.TrialEndsAt)

	require.NotNil(t, usersRepo.created)
	assert.Equal(t, domain.RoleAdmin, usersRepo.created.Role)
	assert.Equal(t, int64(7), usersRepo.created.BusinessID)

	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, "admin", resp.User.Role)

	// пароль хранится только в виде bcrypt хеша
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usersRepo.created.PasswordHash), []byte("secret-password")))
}

func TestService_Register_JoinsExistingBusiness(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	usersRepo := &fakeUserRepo{}
	bizRepo := &fakeBusinessRepo{existing: &domain.Business{ID: 7, Name: "Barber", Active: true}}
	svc := newService(usersRepo, bizRepo, now)

	req := registerRequest()
	req.BusinessID = ptr.Ptr(int64(7))

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, bizRepo.created, "no new business when joining")
	assert.Equal(t, domain.RoleUser, usersRepo.created.Role)
	assert.Equal(t, "user", resp.User.Role)
}

func TestService_Register_UnknownBusiness(t *testing.T) {
	svc := newService(&fakeUserRepo{}, &fakeBusinessRepo{}, time.Now())

	req := registerRequest()
	req.BusinessID = ptr.Ptr(int64(99))

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestService_Register_Validation(t *testing.T) {
	svc := newService(&fakeUserRepo{}, &fakeBusinessRepo{}, time.Now())

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
	}{
		{"empty name", func(r *models.RegisterRequest) { r.Name = "" }},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "1234" }},
		{"no business name for a new business", func(r *models.RegisterRequest) { r.BusinessName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	usersRepo := &fakeUserRepo{byEmail: &domain.User{
		ID:           1,
		BusinessID:   7,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}}
	svc := newService(usersRepo, &fakeBusinessRepo{}, time.Now())

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ana@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "token", resp.Token)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
