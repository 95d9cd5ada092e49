package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/alexisrr11/turnos-service/internal/domain"
	businessRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/business"
	userRepo "github.com/alexisrr11/turnos-service/internal/infra/storage/user"
	"github.com/alexisrr11/turnos-service/internal/service/users/models"
)

const (
	minPasswordLength = 8
	maxNameLength     = 100
)

// Service сервис пользователей: регистрация, вход, создание бизнеса
type Service struct {
	userRepo     UserRepository
	businessRepo BusinessRepository
	txManager    TxManager
	tokens       TokenIssuer
	tp           TimeProvider
	log          Logger
}

func New(
	userRepo UserRepository,
	businessRepo BusinessRepository,
	txManager TxManager,
	tokens TokenIssuer,
	tp TimeProvider,
	log Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		txManager:    txManager,
		tokens:       tokens,
		tp:           tp,
		log:          log,
	}
}

// Register регистрирует пользователя.
// Без businessId создаётся новый бизнес с пробным периодом, пользователь
// становится его администратором. С businessId пользователь присоединяется
// к существующему бизнесу с обычной ролью
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	now := s.tp.Now()

	var created *domain.User
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		businessID := int64(0)
		role := domain.RoleUser

		if req.BusinessID == nil {
			biz, err := s.businessRepo.Create(ctx, &domain.Business{
				Name:          businessName(req),
				TrialStartsAt: now,
				TrialEndsAt:   now.AddDate(0, 0, domain.DefaultTrialDays),
				Active:        true,
			})
			if err != nil {
				return fmt.Errorf("%w: Register - failed to create business: %v", ErrInternal, err)
			}
			businessID = biz.ID
			role = domain.RoleAdmin
		} else {
			biz, err := s.businessRepo.GetByID(ctx, *req.BusinessID)
			if err != nil {
				if errors.Is(err, businessRepo.ErrBusinessNotFound) {
					return ErrBusinessNotFound
				}
				return fmt.Errorf("%w: Register - failed to get business: %v", ErrInternal, err)
			}
			businessID = biz.ID
		}

		u, err := s.userRepo.Create(ctx, &domain.User{
			BusinessID:   businessID,
			Name:         strings.TrimSpace(req.Name),
			Surname:      strings.TrimSpace(req.Surname),
			Email:        req.Email,
			PasswordHash: string(hash),
			Phone:        strings.TrimSpace(req.Phone),
			Role:         role,
		})
		if err != nil {
			if errors.Is(err, userRepo.ErrEmailTaken) {
				return ErrEmailTaken
			}
			return fmt.Errorf("%w: Register - failed to create user: %v", ErrInternal, err)
		}

		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.BusinessID, string(created.Role), now)
	if err != nil {
		return nil, fmt.Errorf("%w: Register - failed to issue token: %v", ErrInternal, err)
	}

	s.log.Info("users.service: registered user %d (role %s) for business %d", created.ID, created.Role, created.BusinessID)

	return &models.AuthResponse{Token: token, User: models.FromDomain(created)}, nil
}

// Login проверяет учётные данные и выпускает токен доступа
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: Login - failed to get user: %v", ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.BusinessID, string(u.Role), s.tp.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: Login - failed to issue token: %v", ErrInternal, err)
	}

	return &models.AuthResponse{Token: token, User: models.FromDomain(u)}, nil
}

// GetByID возвращает пользователя своего бизнеса
func (s *Service) GetByID(ctx context.Context, requester domain.Identity, id int64) (*models.UserResponse, error) {
	if !requester.CanManage(id, requester.BusinessID) {
		return nil, ErrAccessDenied
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - failed to get user: %v", ErrInternal, err)
	}
	if !requester.SameBusiness(u.BusinessID) {
		return nil, ErrUserNotFound
	}

	return models.FromDomain(u), nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > maxNameLength || len(req.Surname) > maxNameLength {
		return fmt.Errorf("%w: name or surname is too long", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if req.BusinessID != nil && *req.BusinessID <= 0 {
		return fmt.Errorf("%w: business id must be positive", ErrInvalidInput)
	}
	if req.BusinessID == nil && strings.TrimSpace(req.BusinessName) == "" {
		return fmt.Errorf("%w: business name is required to create a business", ErrInvalidInput)
	}
	return nil
}

func businessName(req *models.RegisterRequest) string {
	return strings.TrimSpace(req.BusinessName)
}
