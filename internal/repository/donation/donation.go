package donation

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"donations/internal/entities"
	"donations/internal/repository"
	"donations/internal/service/donation"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const donationColumns = `id, requester_id, courier_id, item, quantity,
		pickup_lat, pickup_lng, drop_name, drop_lat, drop_lng,
		status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, donationModify entities.DonationModify) (*entities.Donation, error) {
	query := `
		INSERT INTO donations (id, requester_id, item, quantity, pickup_lat, pickup_lng, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + donationColumns

	var pickupLat, pickupLng *float64
	if donationModify.Pickup != nil {
		pickupLat = &donationModify.Pickup.Lat
		pickupLng = &donationModify.Pickup.Lng
	}

	row := r.querier.QueryRow(
		ctx,
		query,
		donationModify.ID,
		donationModify.RequesterID,
		donationModify.Item,
		donationModify.Quantity,
		pickupLat,
		pickupLng,
		entities.InitialDonationStatus.String(),
	)

	donationDB, err := scanDonation(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, donation.ErrRequesterNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, donation.ErrConflictOrNotFound
		}
		return nil, fmt.Errorf("unexpected donation repository create error: %w", err)
	}

	return ToDomain(donationDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE id = $1`

	donationDB, err := scanDonation(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, donation.ErrDonationNotFound
		}
		return nil, fmt.Errorf("unexpected donation repository get error: %w", err)
	}

	return ToDomain(donationDB), nil
}

// Update edits requester-owned free-text fields, conditional on the
// donation still being pending and owned by the requester.
func (r *Repository) Update(ctx context.Context, donationModify entities.DonationModify) (*entities.Donation, error) {
	builder := qb.
		Update("donations")

	// опциональные поля
	if donationModify.Item != nil {
		builder = builder.Set("item", donationModify.Item)
	}
	if donationModify.Quantity != nil {
		builder = builder.Set("quantity", donationModify.Quantity)
	}
	if donationModify.Pickup != nil {
		builder = builder.
			Set("pickup_lat", donationModify.Pickup.Lat).
			Set("pickup_lng", donationModify.Pickup.Lng)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{
			"id":           donationModify.ID,
			"requester_id": donationModify.RequesterID,
			"status":       entities.DonationPending.String(),
		}).
		Suffix("RETURNING " + donationColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected donation repository update error: %w", err)
	}

	donationDB, err := scanDonation(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, donation.ErrConflictOrNotFound
		}
		return nil, fmt.Errorf("unexpected donation repository update error: %w", err)
	}

	return ToDomain(donationDB), nil
}

// UpdateStatus is the conditional write behind every courier and
// operator transition: compare-and-swap on status, optionally also on
// the assigned courier. Zero affected rows means the caller lost a
// race or named a missing donation; the two are indistinguishable here.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to entities.DonationStatusType,
	courierID *int64,
) (*entities.Donation, error) {
	where := sq.Eq{
		"id":     id,
		"status": from.String(),
	}
	if courierID != nil {
		where["courier_id"] = *courierID
	}

	builder := qb.
		Update("donations").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(where).
		Suffix("RETURNING " + donationColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected donation repository status update error: %w", err)
	}

	donationDB, err := scanDonation(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, donation.ErrConflictOrNotFound
		}
		return nil, fmt.Errorf("unexpected donation repository status update error: %w", err)
	}

	return ToDomain(donationDB), nil
}

// AssignCourier moves the donation into accepted from any assignable
// source in one statement. COALESCE keeps the first-assignment drop
// point over any later reassignment; the prev self-join captures the
// pre-write status for the emitted event.
func (r *Repository) AssignCourier(
	ctx context.Context,
	id string,
	courierID int64,
	drop entities.DropPoint,
) (*entities.Donation, entities.DonationStatusType, error) {
	query := `
		UPDATE donations SET
			status     = $2,
			courier_id = $3,
			drop_name  = COALESCE(prev.drop_name, $4),
			drop_lat   = COALESCE(prev.drop_lat,  $5),
			drop_lng   = COALESCE(prev.drop_lng,  $6),
			updated_at = NOW()
		FROM donations prev
		WHERE donations.id = prev.id
		  AND donations.id = $1
		  AND donations.status = ANY($7)
		RETURNING prev.status,
			donations.id, donations.requester_id, donations.courier_id,
			donations.item, donations.quantity,
			donations.pickup_lat, donations.pickup_lng,
			donations.drop_name, donations.drop_lat, donations.drop_lng,
			donations.status, donations.created_at, donations.updated_at`

	sources := make([]string, 0, len(entities.AssignableStatuses))
	for _, s := range entities.AssignableStatuses {
		sources = append(sources, s.String())
	}

	var (
		prevStatus string
		donationDB DonationDB
	)
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		entities.DonationAccepted.String(),
		courierID,
		drop.Name,
		drop.Location.Lat,
		drop.Location.Lng,
		sources,
	).Scan(
		&prevStatus,
		&donationDB.ID,
		&donationDB.RequesterID,
		&donationDB.CourierID,
		&donationDB.Item,
		&donationDB.Quantity,
		&donationDB.PickupLat,
		&donationDB.PickupLng,
		&donationDB.DropName,
		&donationDB.DropLat,
		&donationDB.DropLng,
		&donationDB.Status,
		&donationDB.CreatedAt,
		&donationDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", donation.ErrConflictOrNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, "", donation.ErrCourierNotFound
		}
		return nil, "", fmt.Errorf("unexpected donation repository assign error: %w", err)
	}

	return ToDomain(&donationDB), entities.DonationStatusType(prevStatus), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DonationStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM donations
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected donation repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.DonationStatusType]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected donation repository count scan error: %w", err)
		}
		counts[entities.DonationStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected donation repository count rows error: %w", err)
	}

	return counts, nil
}

func scanDonation(row pgx.Row) (*DonationDB, error) {
	var donationDB DonationDB
	err := row.Scan(
		&donationDB.ID,
		&donationDB.RequesterID,
		&donationDB.CourierID,
		&donationDB.Item,
		&donationDB.Quantity,
		&donationDB.PickupLat,
		&donationDB.PickupLng,
		&donationDB.DropName,
		&donationDB.DropLat,
		&donationDB.DropLng,
		&donationDB.Status,
		&donationDB.CreatedAt,
		&donationDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &donationDB, nil
}
