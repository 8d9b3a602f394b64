package donation

import "time"

type DonationDB struct {
	ID          string
	RequesterID int64
	CourierID   *int64
	Item        string
	Quantity    string
	PickupLat   *float64
	PickupLng   *float64
	DropName    *string
	DropLat     *float64
	DropLng     *float64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
