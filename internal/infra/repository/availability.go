package repository

import (
	"context"

	"chefbook/internal/infra"
	"chefbook/internal/infra/db"

	"github.com/google/uuid"
)

// AvailabilityRepository is the capacity ledger: per (dish, date) counters
// of reserved units against the dish's daily cap.
type AvailabilityRepository struct{}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

// Reserve admits qty units for (dish, date) only if the resulting count
// stays within maxUnits. The guard lives inside a single statement, so two
// concurrent reservations of the last unit cannot both pass: the losing
// statement affects zero rows and surfaces KindConflict. The row is created
// lazily on first reservation and never deleted.
func (r *AvailabilityRepository) Reserve(ctx context.Context, tx db.DBTX, dishID uuid.UUID, date string, qty int32, maxUnits int32) error {
	tag, err := tx.Exec(ctx, `
		INSERT INTO daily_availability (dish_id, on_date, reserved_units)
		SELECT $1, $2::date, $3::int
		WHERE $3::int <= $4::int
		ON CONFLICT (dish_id, on_date) DO UPDATE
		SET reserved_units = daily_availability.reserved_units + $3::int
		WHERE daily_availability.reserved_units + $3::int <= $4::int`,
		dishID, date, qty, maxUnits)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("daily capacity exhausted", nil, infra.KindConflict)
	}
	return nil
}

// Release returns qty units to (dish, date), floored at zero. Correct
// callers never drive the counter negative; the floor only guards against
// duplicate release deliveries.
func (r *AvailabilityRepository) Release(ctx context.Context, tx db.DBTX, dishID uuid.UUID, date string, qty int32) error {
	_, err := tx.Exec(ctx, `
		UPDATE daily_availability
		SET reserved_units = GREATEST(reserved_units - $3::int, 0)
		WHERE dish_id = $1 AND on_date = $2::date`,
		dishID, date, qty)
	if err != nil {
		return infra.WrapRepoErr("failed to release capacity", err)
	}
	return nil
}

// Reserved returns the current reserved count for (dish, date); zero when
// the row has not been created yet.
func (r *AvailabilityRepository) Reserved(ctx context.Context, tx db.DBTX, dishID uuid.UUID, date string) (int32, error) {
	var reserved int32
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(
			(SELECT reserved_units FROM daily_availability WHERE dish_id = $1 AND on_date = $2::date),
			0)`,
		dishID, date).Scan(&reserved)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read reserved units", err)
	}
	return reserved, nil
}
