package resource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/pkg/dbmetrics"
	"github.com/mobisfm/FM-BookingService/pkg/psqlbuilder"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

// Repository persists rooms and vehicles
type Repository struct {
	db DBExecutor
}

// NewRepository creates a resource repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var roomColumns = []string{
	"id", "name", "location", "max_capacity", "status", "created_at", "updated_at",
}

var vehicleColumns = []string{
	"id", "name", "license_plate", "power_source", "status",
	"max_reservation_days", "current_kilometers", "charge_percent",
	"created_at", "updated_at",
}

// GetRoom fetches one room by id
func (r *Repository) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Name,
		&room.Location,
		&room.MaxCapacity,
		&room.Status,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time
	return &room, nil
}

// ListRooms fetches every room ordered by name
func (r *Repository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Location,
			&room.MaxCapacity,
			&room.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListRooms - scan room: %v", ErrScanRow, err)
		}
		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRooms - iterate rows: %v", ErrExecQuery, err)
	}
	return rooms, nil
}

// GetVehicle fetches one vehicle by id
func (r *Repository) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicle - build select query: %v", ErrBuildQuery, err)
	}

	var vehicle domain.Vehicle
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.LicensePlate,
		&vehicle.PowerSource,
		&vehicle.Status,
		&vehicle.MaxReservationDays,
		&vehicle.CurrentKilometers,
		&vehicle.ChargePercent,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVehicle - scan vehicle: %v", ErrScanRow, err)
	}

	vehicle.CreatedAt = createdAt.Time
	vehicle.UpdatedAt = updatedAt.Time
	return &vehicle, nil
}

// ListVehicles fetches every vehicle ordered by name
func (r *Repository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		var vehicle domain.Vehicle
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&vehicle.ID,
			&vehicle.Name,
			&vehicle.LicensePlate,
			&vehicle.PowerSource,
			&vehicle.Status,
			&vehicle.MaxReservationDays,
			&vehicle.CurrentKilometers,
			&vehicle.ChargePercent,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListVehicles - scan vehicle: %v", ErrScanRow, err)
		}
		vehicle.CreatedAt = createdAt.Time
		vehicle.UpdatedAt = updatedAt.Time
		vehicles = append(vehicles, &vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - iterate rows: %v", ErrExecQuery, err)
	}
	return vehicles, nil
}

// UpdateRoomStatus moves a room to the given status
func (r *Repository) UpdateRoomStatus(ctx context.Context, id int64, status domain.ResourceStatus) error {
	return r.updateStatus(ctx, "rooms", id, status)
}

// UpdateVehicleStatus moves a vehicle to the given status
func (r *Repository) UpdateVehicleStatus(ctx context.Context, id int64, status domain.ResourceStatus) error {
	return r.updateStatus(ctx, "vehicles", id, status)
}

func (r *Repository) updateStatus(ctx context.Context, table string, id int64, status domain.ResourceStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: updateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: updateStatus - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

// UpdateVehicleState pushes close-out readings onto the vehicle and flips
// its status in the same statement, so the write is atomic with the
// surrounding transaction
func (r *Repository) UpdateVehicleState(ctx context.Context, id int64, kilometers, chargePercent float64, status domain.ResourceStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("current_kilometers", kilometers).
		Set("charge_percent", chargePercent).
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateVehicleState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateVehicleState - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateVehicleState - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}
	return nil
}
