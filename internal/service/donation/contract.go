//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=donation_test
package donation

import (
	"context"

	"donations/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, donationModifyEntity entities.DonationModify) (*entities.Donation, error)
	GetByID(ctx context.Context, id string) (*entities.Donation, error)
	Update(ctx context.Context, donationModifyEntity entities.DonationModify) (*entities.Donation, error)

	// UpdateStatus performs the single conditional write: status moves
	// from "from" to "to" only if the current status still equals
	// "from" (and courier_id equals courierID when non-nil). Zero rows
	// affected must surface as ErrConflictOrNotFound.
	UpdateStatus(ctx context.Context, id string, from, to entities.DonationStatusType, courierID *int64) (*entities.Donation, error)

	// AssignCourier conditionally moves the donation into "accepted"
	// from any assignable source, sets the courier and, only on first
	// assignment, the drop point. Returns the status the donation held
	// before the write.
	AssignCourier(ctx context.Context, id string, courierID int64, drop entities.DropPoint) (*entities.Donation, entities.DonationStatusType, error)

	CountByStatus(ctx context.Context) (map[entities.DonationStatusType]int64, error)
}

type CourierDirectory interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
}

// DropPointPicker resolves the drop location for a first assignment.
// Injected so the warehouse-routing rule can change without touching
// the state machine.
type DropPointPicker interface {
	Pick() (entities.DropPoint, error)
}

// EventSink receives a record of every successful transition for
// downstream notification. Implementations handle and log their own
// delivery failures; a failed publish never fails the transition.
type EventSink interface {
	Publish(ctx context.Context, change entities.StatusChange)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
