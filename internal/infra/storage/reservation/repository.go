package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/pkg/dbmetrics"
	"github.com/mobisfm/FM-BookingService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"resource_type",
	"resource_id",
	"user_id",
	"user_name",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"purpose",
	"attendees",
	"status",
	"initial_kilometers",
	"final_kilometers",
	"initial_charge_percent",
	"final_charge_percent",
	"is_closed",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists reservations for both resource variants in a single
// table discriminated by resource_type
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation. If the context carries an open transaction
// (conflict-checked create runs serializable), the insert joins it.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var (
		initialKm, finalKm         *float64
		initialCharge, finalCharge *float64
		isClosed                   bool
	)
	if res.Vehicle != nil {
		initialKm = &res.Vehicle.InitialKilometers
		finalKm = res.Vehicle.FinalKilometers
		initialCharge = &res.Vehicle.InitialChargePercent
		finalCharge = res.Vehicle.FinalChargePercent
		isClosed = res.Vehicle.IsClosed
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"resource_type",
			"resource_id",
			"user_id",
			"user_name",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"purpose",
			"attendees",
			"status",
			"initial_kilometers",
			"final_kilometers",
			"initial_charge_percent",
			"final_charge_percent",
			"is_closed",
		).
		Values(
			res.ResourceType,
			res.ResourceID,
			res.UserID,
			res.UserName,
			res.StartDate,
			res.EndDate,
			res.StartTime,
			res.EndTime,
			res.Purpose,
			res.Attendees,
			res.Status,
			initialKm,
			finalKm,
			initialCharge,
			finalCharge,
			isClosed,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID fetches one reservation
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// GetWithFilter fetches reservations narrowed by the filter. The date pair
// selects every reservation whose [start_date, end_date] range touches the
// filter window, which is what overlap checks need.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if filter.ResourceType != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_type": filter.ResourceType})
	}
	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := selectBuilder.
		OrderBy("start_date ASC, start_time ASC NULLS FIRST, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update rewrites the editable fields of a reservation (the edit path)
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("start_date", res.StartDate).
		Set("end_date", res.EndDate).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("purpose", res.Purpose).
		Set("attendees", res.Attendees).
		Set("status", res.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return requireRowAffected(result, "Update")
}

// UpdateStatus moves a reservation to the given status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	return requireRowAffected(result, "UpdateStatus")
}

// Cancel moves a reservation to cancelled, recording the reason and instant
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}
	return requireRowAffected(result, "Cancel")
}

// Close finalizes a vehicle reservation with its close-out readings
func (r *Repository) Close(ctx context.Context, id int64, finalKilometers, finalChargePercent float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCompleted).
		Set("is_closed", true).
		Set("final_kilometers", finalKilometers).
		Set("final_charge_percent", finalChargePercent).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}
	return requireRowAffected(result, "Close")
}

func requireRowAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// scanReservation maps one row onto the domain type, assembling the
// VehicleUsage payload for vehicle rows
func scanReservation(scan func(dest ...interface{}) error) (*domain.Reservation, error) {
	var (
		res                        domain.Reservation
		initialKm, finalKm         sql.NullFloat64
		initialCharge, finalCharge sql.NullFloat64
		isClosed                   bool
		cancelledAt                sql.NullTime
		createdAt, updatedAt       sql.NullTime
	)

	err := scan(
		&res.ID,
		&res.ResourceType,
		&res.ResourceID,
		&res.UserID,
		&res.UserName,
		&res.StartDate,
		&res.EndDate,
		&res.StartTime,
		&res.EndTime,
		&res.Purpose,
		&res.Attendees,
		&res.Status,
		&initialKm,
		&finalKm,
		&initialCharge,
		&finalCharge,
		&isClosed,
		&res.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if res.ResourceType == domain.ResourceTypeVehicle {
		usage := &domain.VehicleUsage{
			InitialKilometers:    initialKm.Float64,
			InitialChargePercent: initialCharge.Float64,
			IsClosed:             isClosed,
		}
		if finalKm.Valid {
			v := finalKm.Float64
			usage.FinalKilometers = &v
		}
		if finalCharge.Valid {
			v := finalCharge.Float64
			usage.FinalChargePercent = &v
		}
		res.Vehicle = usage
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		res.CancelledAt = &t
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scan reservation row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate reservation rows: %v", ErrExecQuery, err)
	}
	return reservations, nil
}
