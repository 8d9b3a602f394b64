package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"donations/internal/entities"
)

type Donation struct {
	repository Repository
	couriers   CourierDirectory
	dropPicker DropPointPicker
	events     EventSink
	txManager  TxManager
}

func New(
	repository Repository,
	couriers CourierDirectory,
	dropPicker DropPointPicker,
	events EventSink,
	txManager TxManager,
) *Donation {
	return &Donation{
		repository: repository,
		couriers:   couriers,
		dropPicker: dropPicker,
		events:     events,
		txManager:  txManager,
	}
}

func (s *Donation) CreateDonation(ctx context.Context, donationModify entities.DonationModify) (*entities.Donation, error) {
	if donationModify.RequesterID == nil ||
		donationModify.Item == nil ||
		donationModify.Quantity == nil {
		return nil, ErrMissingRequiredFields
	}

	if *donationModify.RequesterID <= 0 {
		return nil, ErrInvalidActorID
	}
	if !isValidText(*donationModify.Item) || !isValidText(*donationModify.Quantity) {
		return nil, ErrMissingRequiredFields
	}

	id := uuid.NewString()
	donationModify.ID = &id

	created, err := s.repository.Create(ctx, donationModify)
	if err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	return created, nil
}

// UpdateDonation lets the requester edit item, quantity or pickup point
// while the donation is still pending. The write is conditional on
// ownership and status, so an edit racing an operator decision loses
// cleanly.
func (s *Donation) UpdateDonation(ctx context.Context, donationModify entities.DonationModify) (*entities.Donation, error) {
	if donationModify.ID == nil || donationModify.RequesterID == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDonationID(*donationModify.ID) {
		return nil, ErrInvalidDonationID
	}
	if donationModify.Item == nil && donationModify.Quantity == nil && donationModify.Pickup == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	updated, err := s.repository.Update(ctx, donationModify)
	if err != nil {
		return nil, fmt.Errorf("update donation: %w", err)
	}
	return updated, nil
}

func (s *Donation) GetDonation(ctx context.Context, id string) (*entities.Donation, error) {
	if !isValidDonationID(id) {
		return nil, ErrInvalidDonationID
	}

	donationEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get donation: %w", err)
	}
	return donationEntity, nil
}

// Transition moves a donation along the static transition table on
// behalf of the acting role. The whole legality decision compiles into
// a single conditional write; there is no read-then-write pair, so two
// racing actors can never both win the same edge.
func (s *Donation) Transition(
	ctx context.Context,
	id string,
	actorRole entities.ActorRole,
	actorID int64,
	target entities.DonationStatusType,
) (*entities.Donation, error) {
	if !isValidDonationID(id) {
		return nil, ErrInvalidDonationID
	}
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}
	if !isValidStatus(target.String()) {
		return nil, ErrInvalidStatus
	}

	source, ok := transitionSources[transitionKey{actor: actorRole, target: target}]
	if !ok {
		return nil, ErrIllegalTransition
	}

	// Курьерские переходы дополнительно сверяют исполнителя на уровне SQL
	var courierGuard *int64
	if actorRole == entities.RoleCourier {
		courierGuard = &actorID
	}

	updated, err := s.repository.UpdateStatus(ctx, id, source, target, courierGuard)
	if err != nil {
		return nil, fmt.Errorf("transition to %s: %w", target, err)
	}

	s.events.Publish(ctx, entities.StatusChange{
		DonationID: updated.ID,
		From:       source,
		To:         target,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	return updated, nil
}

// Assign is the operator path into "accepted": first assignment from
// pending, or reassignment after a courier rejected or could not find
// the goods. The drop point is resolved once and survives any later
// reassignment untouched.
func (s *Donation) Assign(ctx context.Context, id string, courierID, actorID int64) (*entities.Donation, error) {
	if !isValidDonationID(id) {
		return nil, ErrInvalidDonationID
	}
	if courierID <= 0 {
		return nil, ErrCourierNotFound
	}
	if actorID <= 0 {
		return nil, ErrInvalidActorID
	}

	var (
		assigned   *entities.Donation
		prevStatus entities.DonationStatusType
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.couriers.GetCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("resolve courier: %w", err)
		}

		if courier.Role != entities.RoleCourier || courier.IsBlocked {
			return ErrIneligibleCourier
		}

		drop, err := s.dropPicker.Pick()
		if err != nil {
			return fmt.Errorf("pick drop point: %w", err)
		}

		assigned, prevStatus, err = s.repository.AssignCourier(ctx, id, courierID, drop)
		if err != nil {
			return fmt.Errorf("assign courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, entities.StatusChange{
		DonationID: assigned.ID,
		From:       prevStatus,
		To:         entities.DonationAccepted,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	return assigned, nil
}

func (s *Donation) CountByStatus(ctx context.Context) (map[entities.DonationStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count donations by status: %w", err)
	}
	return counts, nil
}
