package courier

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"donations/internal/entities"
	"donations/internal/service/courier"
)

const actorColumns = `id, name, phone, role, is_blocked, lat, lng, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE id = $1`

	courierDB, err := scanActor(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	return ToDomain(courierDB), nil
}

// GetEligible lists couriers that may receive suggestions and new
// assignments. Blocked couriers never appear here, whatever their
// location.
func (r *Repository) GetEligible(ctx context.Context) ([]entities.Courier, error) {
	query := `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE role = 'courier' AND is_blocked = FALSE
		ORDER BY id ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}
	defer rows.Close()

	var couriersDB []CourierDB
	for rows.Next() {
		var courierDB CourierDB
		if err := scanActorFields(rows, &courierDB); err != nil {
			return nil, fmt.Errorf("unexpected courier repository list scan error: %w", err)
		}
		couriersDB = append(couriersDB, courierDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository list rows error: %w", err)
	}

	return ToDomainList(couriersDB), nil
}

func (r *Repository) UpdateLocation(ctx context.Context, id int64, location entities.GeoPoint) (*entities.Courier, error) {
	query := `
		UPDATE actors
		SET lat = $2, lng = $3, updated_at = NOW()
		WHERE id = $1 AND role = 'courier'
		RETURNING ` + actorColumns

	courierDB, err := scanActor(r.querier.QueryRow(ctx, query, id, location.Lat, location.Lng))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository location update error: %w", err)
	}

	return ToDomain(courierDB), nil
}

func scanActor(row pgx.Row) (*CourierDB, error) {
	var courierDB CourierDB
	if err := scanActorFields(row, &courierDB); err != nil {
		return nil, err
	}
	return &courierDB, nil
}

func scanActorFields(row pgx.Row, courierDB *CourierDB) error {
	return row.Scan(
		&courierDB.ID,
		&courierDB.Name,
		&courierDB.Phone,
		&courierDB.Role,
		&courierDB.IsBlocked,
		&courierDB.Lat,
		&courierDB.Lng,
		&courierDB.CreatedAt,
		&courierDB.UpdatedAt,
	)
}
