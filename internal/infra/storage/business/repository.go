package business

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/dbmetrics"
	"github.com/alexisrr11/turnos-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бизнесами (tenants)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый бизнес
func (r *Repository) Create(ctx context.Context, biz *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("businesses").
		Columns(
			"name",
			"trial_starts_at",
			"trial_ends_at",
			"active",
		).
		Values(
			biz.Name,
			biz.TrialStartsAt,
			biz.TrialEndsAt,
			biz.Active,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&biz.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	biz.CreatedAt = createdAt.Time

	return biz, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"trial_starts_at",
		"trial_ends_at",
		"active",
		"created_at",
	).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var biz domain.Business
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&biz.ID,
		&biz.Name,
		&biz.TrialStartsAt,
		&biz.TrialEndsAt,
		&biz.Active,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %v", ErrScanRow, err)
	}

	biz.CreatedAt = createdAt.Time

	return &biz, nil
}
