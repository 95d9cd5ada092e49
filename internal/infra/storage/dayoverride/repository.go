package dayoverride

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

// Repository репозиторий ручных блокировок и разблокировок дат.
// Блокировки и разблокировки хранятся в отдельных таблицах
// blocked_days и unblocked_days с уникальной парой (business_id, date)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок дат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertBlock создает или обновляет блокировку даты
// Повторный вызов для той же даты обновляет мотив и реактивирует блокировку
func (r *Repository) UpsertBlock(ctx context.Context, businessID int64, date time.Time, motive string) (*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_days").
		Columns("business_id", "date", "motive", "active").
		Values(businessID, date, motive, true).
		Suffix("ON CONFLICT (business_id, date) DO UPDATE SET motive = EXCLUDED.motive, active = TRUE").
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBlock - build insert query: %v", ErrBuildQuery, err)
	}

	blocked := &domain.BlockedDay{
		BusinessID: businessID,
		Date:       date,
		Motive:     motive,
		Active:     true,
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertBlock - execute insert: %v", ErrExecQuery, err)
	}
	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// UpsertUnblock создает или обновляет разблокировку даты
func (r *Repository) UpsertUnblock(ctx context.Context, businessID int64, date time.Time, motive string) (*domain.UnblockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("unblocked_days").
		Columns("business_id", "date", "motive", "active").
		Values(businessID, date, motive, true).
		Suffix("ON CONFLICT (business_id, date) DO UPDATE SET motive = EXCLUDED.motive, active = TRUE").
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertUnblock - build insert query: %v", ErrBuildQuery, err)
	}

	unblocked := &domain.UnblockedDay{
		BusinessID: businessID,
		Date:       date,
		Motive:     motive,
		Active:     true,
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&unblocked.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertUnblock - execute insert: %v", ErrExecQuery, err)
	}
	unblocked.CreatedAt = createdAt.Time

	return unblocked, nil
}

// HasActiveBlock возвращает true, если на дату есть активная блокировка
func (r *Repository) HasActiveBlock(ctx context.Context, businessID int64, date time.Time) (bool, error) {
	return r.hasActive(ctx, "blocked_days", businessID, date)
}

// HasActiveUnblock возвращает true, если на дату есть активная разблокировка
func (r *Repository) HasActiveUnblock(ctx context.Context, businessID int64, date time.Time) (bool, error) {
	return r.hasActive(ctx, "unblocked_days", businessID, date)
}

// ListActiveBlockDates возвращает даты с активной блокировкой в периоде
func (r *Repository) ListActiveBlockDates(ctx context.Context, businessID int64, from, to time.Time) ([]time.Time, error) {
	return r.listActiveDates(ctx, "blocked_days", businessID, from, to)
}

// ListActiveUnblockDates возвращает даты с активной разблокировкой в периоде
func (r *Repository) ListActiveUnblockDates(ctx context.Context, businessID int64, from, to time.Time) ([]time.Time, error) {
	return r.listActiveDates(ctx, "unblocked_days", businessID, from, to)
}

func (r *Repository) hasActive(ctx context.Context, table string, businessID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{
			"business_id": businessID,
			"date":        date,
			"active":      true,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: hasActive(%s) - build select query: %v", ErrBuildQuery, table, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: hasActive(%s) - scan row: %v", ErrScanRow, table, err)
	}

	return true, nil
}

func (r *Repository) listActiveDates(ctx context.Context, table string, businessID int64, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date").
		From(table).
		Where(squirrel.Eq{"business_id": businessID, "active": true}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listActiveDates(%s) - build select query: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listActiveDates(%s) - execute query: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: listActiveDates(%s) - scan row: %v", ErrScanRow, table, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listActiveDates(%s) - rows error: %v", ErrScanRow, table, err)
	}

	return dates, nil
}
