//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"donations/internal/entities"
)

type DonationProvider interface {
	GetDonation(ctx context.Context, id string) (*entities.Donation, error)
}

// StateMachine is the commit side of the coordinator: the actual
// assignment transition with its race-safety guarantee lives there.
type StateMachine interface {
	Assign(ctx context.Context, id string, courierID, actorID int64) (*entities.Donation, error)
}

type CourierDirectory interface {
	// GetEligibleCouriers returns couriers with role=courier and
	// is_blocked=false, including their last known locations.
	GetEligibleCouriers(ctx context.Context) ([]entities.Courier, error)
}
