package dispatch

import (
	"context"
	"fmt"
	"strings"

	"donations/internal/entities"
	"donations/pkg/geomatch"
)

// Dispatch coordinates courier suggestion and assignment commit.
// Suggestion is a pure read over live courier locations; nothing stops
// the operator from committing a courier that never appeared in a
// suggestion, and only the commit carries the race-safety guarantee.
type Dispatch struct {
	donations    DonationProvider
	stateMachine StateMachine
	couriers     CourierDirectory
	defaultLimit int
}

func New(
	donations DonationProvider,
	stateMachine StateMachine,
	couriers CourierDirectory,
	defaultLimit int,
) *Dispatch {
	return &Dispatch{
		donations:    donations,
		stateMachine: stateMachine,
		couriers:     couriers,
		defaultLimit: defaultLimit,
	}
}

// Suggest ranks eligible couriers by distance to the donation's pickup
// point. A donation without pickup coordinates is an explicit error,
// not a silent empty list. Couriers without a known location are
// skipped silently; matching tolerates stale locations by design.
func (d *Dispatch) Suggest(ctx context.Context, donationID string, limit int) ([]entities.RankedCourier, error) {
	if strings.TrimSpace(donationID) == "" {
		return nil, ErrInvalidDonationID
	}

	if limit <= 0 {
		limit = d.defaultLimit
	}

	donationEntity, err := d.donations.GetDonation(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("resolve donation: %w", err)
	}

	if donationEntity.Pickup == nil {
		return nil, ErrNoPickupLocation
	}

	couriers, err := d.couriers.GetEligibleCouriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load eligible couriers: %w", err)
	}

	byID := make(map[int64]entities.Courier, len(couriers))
	candidates := make([]geomatch.Candidate, 0, len(couriers))
	for _, c := range couriers {
		byID[c.ID] = c

		candidate := geomatch.Candidate{ID: c.ID}
		if c.Location != nil {
			candidate.Location = &geomatch.Point{Lat: c.Location.Lat, Lng: c.Location.Lng}
		}
		candidates = append(candidates, candidate)
	}

	target := &geomatch.Point{Lat: donationEntity.Pickup.Lat, Lng: donationEntity.Pickup.Lng}
	ranked := geomatch.Nearest(target, candidates, limit)

	suggestions := make([]entities.RankedCourier, 0, len(ranked))
	for _, r := range ranked {
		suggestions = append(suggestions, entities.RankedCourier{
			Courier:    byID[r.ID],
			DistanceKM: r.DistanceKM,
		})
	}
	return suggestions, nil
}

// Commit delegates to the state machine's assignment transition.
func (d *Dispatch) Commit(ctx context.Context, donationID string, courierID, actorID int64) (*entities.Donation, error) {
	donationEntity, err := d.stateMachine.Assign(ctx, donationID, courierID, actorID)
	if err != nil {
		return nil, fmt.Errorf("commit assignment: %w", err)
	}
	return donationEntity, nil
}
