package users

import (
	"context"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, biz *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenIssuer интерфейс выпуска токенов доступа
type TokenIssuer interface {
	Issue(userID, businessID int64, role string, now time.Time) (string, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
