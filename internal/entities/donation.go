package entities

import "time"

type Donation struct {
	ID          string
	RequesterID int64
	CourierID   *int64
	Item        string
	Quantity    string
	Pickup      *GeoPoint
	Drop        *DropPoint
	Status      DonationStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DonationStatusType string

const (
	DonationPending         DonationStatusType = "pending"
	DonationAccepted        DonationStatusType = "accepted"
	DonationRejected        DonationStatusType = "rejected"
	DonationCourierRejected DonationStatusType = "courier_rejected"
	DonationCourierAccepted DonationStatusType = "courier_accepted"
	DonationCollected       DonationStatusType = "collected"
	DonationNotFound        DonationStatusType = "not_found"
	DonationDelivered       DonationStatusType = "delivered"
)

const InitialDonationStatus = DonationPending

// AssignableStatuses are the statuses an operator may assign or
// reassign a courier from. courier_rejected and not_found are
// re-enterable on purpose: a failed courier does not fail the request.
var AssignableStatuses = []DonationStatusType{
	DonationPending,
	DonationAccepted,
	DonationCourierRejected,
	DonationNotFound,
}

func (s DonationStatusType) String() string {
	return string(s)
}

type DonationModify struct {
	ID          *string
	RequesterID *int64
	Item        *string
	Quantity    *string
	Pickup      *GeoPoint
}

// StatusChange is emitted after every successful transition for
// downstream notification. The core never performs notification I/O
// itself.
type StatusChange struct {
	DonationID string
	From       DonationStatusType
	To         DonationStatusType
	ActorID    int64
	OccurredAt time.Time
}
