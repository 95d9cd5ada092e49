package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/dbmetrics"
	"github.com/alexisrr11/turnos-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var userColumns = []string{
	"id",
	"business_id",
	"name",
	"surname",
	"email",
	"password_hash",
	"phone",
	"role",
	"created_at",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
// Email хранится в нижнем регистре, уникальность проверяет БД
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"business_id",
			"name",
			"surname",
			"email",
			"password_hash",
			"phone",
			"role",
		).
		Values(
			u.BusinessID,
			u.Name,
			u.Surname,
			strings.ToLower(u.Email),
			u.PasswordHash,
			u.Phone,
			u.Role,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.Email = strings.ToLower(u.Email)
	u.CreatedAt = createdAt.Time

	return u, nil
}

// GetByEmail получает пользователя по email без учёта регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": strings.ToLower(email)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByEmail")
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

func (r *Repository) scanUser(row *sql.Row, op string) (*domain.User, error) {
	var u domain.User
	var createdAt sql.NullTime

	err := row.Scan(
		&u.ID,
		&u.BusinessID,
		&u.Name,
		&u.Surname,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.Role,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	u.CreatedAt = createdAt.Time

	return &u, nil
}
