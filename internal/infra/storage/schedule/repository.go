package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/dbmetrics"
	"github.com/alexisrr11/turnos-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией расписания бизнеса.
// Конфигурация хранится в двух таблицах: schedule_configs (часы и шаг слотов)
// и schedule_weekdays (7 строк включённости дней недели)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает конфигурацию бизнеса вместе с вектором дней недели
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"open_time",
		"close_time",
		"slot_duration_minutes",
		"created_at",
		"updated_at",
	).
		From("schedule_configs").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.BusinessID,
		&cfg.OpenTime,
		&cfg.CloseTime,
		&cfg.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	weekdays, err := r.getWeekdays(ctx, executor, businessID)
	if err != nil {
		return nil, err
	}
	cfg.Weekdays = weekdays

	return &cfg, nil
}

// CreateDefaults создает конфигурацию с дефолтными значениями идемпотентно:
// ON CONFLICT DO NOTHING и по строке конфигурации, и по строкам дней недели,
// поэтому одновременные вызовы для одного бизнеса сходятся к одной строке
// без ошибок дублирования ключа
func (r *Repository) CreateDefaults(ctx context.Context, cfg *domain.ScheduleConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_configs").
		Columns(
			"business_id",
			"open_time",
			"close_time",
			"slot_duration_minutes",
		).
		Values(
			cfg.BusinessID,
			cfg.OpenTime,
			cfg.CloseTime,
			cfg.SlotDurationMinutes,
		).
		Suffix("ON CONFLICT (business_id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateDefaults - execute insert: %v", ErrExecQuery, err)
	}

	return r.insertWeekdays(ctx, executor, cfg.BusinessID, cfg.Weekdays, false)
}

// Update обновляет часы работы, шаг слотов и вектор дней недели
func (r *Repository) Update(ctx context.Context, cfg *domain.ScheduleConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_configs").
		Set("open_time", cfg.OpenTime).
		Set("close_time", cfg.CloseTime).
		Set("slot_duration_minutes", cfg.SlotDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"business_id": cfg.BusinessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return r.insertWeekdays(ctx, executor, cfg.BusinessID, cfg.Weekdays, true)
}

// getWeekdays читает 7 строк включённости дней недели в вектор
func (r *Repository) getWeekdays(ctx context.Context, executor dbmetrics.DBExecutor, businessID int64) ([7]bool, error) {
	var weekdays [7]bool

	query, args, err := psqlbuilder.Select("weekday", "enabled").
		From("schedule_weekdays").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return weekdays, fmt.Errorf("%w: getWeekdays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return weekdays, fmt.Errorf("%w: getWeekdays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var enabled bool
		if err := rows.Scan(&weekday, &enabled); err != nil {
			return weekdays, fmt.Errorf("%w: getWeekdays - scan row: %v", ErrScanRow, err)
		}
		if weekday >= 0 && weekday < 7 {
			weekdays[weekday] = enabled
		}
	}

	if err := rows.Err(); err != nil {
		return weekdays, fmt.Errorf("%w: getWeekdays - rows error: %v", ErrScanRow, err)
	}

	return weekdays, nil
}

// insertWeekdays записывает 7 строк дней недели
// При overwrite=false конфликтующие строки не трогаются (идемпотентное создание),
// при overwrite=true значение enabled перезаписывается
func (r *Repository) insertWeekdays(ctx context.Context, executor dbmetrics.DBExecutor, businessID int64, weekdays [7]bool, overwrite bool) error {
	insertBuilder := psqlbuilder.Insert("schedule_weekdays").
		Columns("business_id", "weekday", "enabled")

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		insertBuilder = insertBuilder.Values(businessID, int(weekday), weekdays[int(weekday)])
	}

	suffix := "ON CONFLICT (business_id, weekday) DO NOTHING"
	if overwrite {
		suffix = "ON CONFLICT (business_id, weekday) DO UPDATE SET enabled = EXCLUDED.enabled"
	}

	query, args, err := insertBuilder.Suffix(suffix).ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertWeekdays - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertWeekdays - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
