package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/pkg/dbmetrics"
	"github.com/mobisfm/FM-BookingService/pkg/psqlbuilder"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

const uniqueViolation = "23505"

func timeMonth(m int) time.Month {
	return time.Month(m)
}

// Repository persists schedule rules and holidays
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var ruleColumns = []string{
	"id", "resource_type", "month", "day_of_week",
	"start_time", "end_time", "enabled", "created_at", "updated_at",
}

// ListRules fetches every explicit rule for a resource type, ordered by
// month then weekday
func (r *Repository) ListRules(ctx context.Context, resourceType domain.ResourceType) ([]*domain.ScheduleRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("schedule_rules").
		Where(squirrel.Eq{"resource_type": resourceType}).
		OrderBy("month ASC, day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.ScheduleRule, 0)
	for rows.Next() {
		var rule domain.ScheduleRule
		var month int
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&rule.ID,
			&rule.ResourceType,
			&month,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.Enabled,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListRules - scan rule: %v", ErrScanRow, err)
		}
		rule.Month = timeMonth(month)
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRules - iterate rows: %v", ErrExecQuery, err)
	}
	return rules, nil
}

// UpsertRule inserts or rewrites the rule for its (resourceType, month,
// dayOfWeek) key, keeping at most one row per key
func (r *Repository) UpsertRule(ctx context.Context, rule *domain.ScheduleRule) (*domain.ScheduleRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_rules").
		Columns("resource_type", "month", "day_of_week", "start_time", "end_time", "enabled").
		Values(rule.ResourceType, int(rule.Month), rule.DayOfWeek, rule.StartTime, rule.EndTime, rule.Enabled).
		Suffix(`ON CONFLICT (resource_type, month, day_of_week) DO UPDATE
			SET start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time,
			    enabled = EXCLUDED.enabled,
			    updated_at = now()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRule - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRule - execute upsert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time
	return rule, nil
}

// ListHolidays fetches every holiday ordered chronologically
func (r *Repository) ListHolidays(ctx context.Context) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day", "month", "year", "comment").
		From("holidays").
		OrderBy("year ASC, month ASC, day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		var holiday domain.Holiday
		var month int
		if err := rows.Scan(&holiday.ID, &holiday.Day, &month, &holiday.Year, &holiday.Comment); err != nil {
			return nil, fmt.Errorf("%w: ListHolidays - scan holiday: %v", ErrScanRow, err)
		}
		holiday.Month = timeMonth(month)
		holidays = append(holidays, &holiday)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolidays - iterate rows: %v", ErrExecQuery, err)
	}
	return holidays, nil
}

// GetHolidayByDate fetches the holiday on (day, month, year), if any
func (r *Repository) GetHolidayByDate(ctx context.Context, day, month, year int) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day", "month", "year", "comment").
		From("holidays").
		Where(squirrel.Eq{"day": day, "month": month, "year": year}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayByDate - build select query: %v", ErrBuildQuery, err)
	}

	var holiday domain.Holiday
	var m int
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&holiday.ID, &holiday.Day, &m, &holiday.Year, &holiday.Comment,
	)
	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayByDate - scan holiday: %v", ErrScanRow, err)
	}
	holiday.Month = timeMonth(m)
	return &holiday, nil
}

// CreateHoliday inserts a holiday
func (r *Repository) CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns("day", "month", "year", "comment").
		Values(holiday.Day, int(holiday.Month), holiday.Year, holiday.Comment).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateHoliday - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateHoliday
		}
		return nil, fmt.Errorf("%w: CreateHoliday - execute insert: %v", ErrExecQuery, err)
	}
	return holiday, nil
}

// DeleteHoliday removes a holiday by id
func (r *Repository) DeleteHoliday(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - execute delete: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoliday - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
