package dispatch

import "errors"

var (
	ErrInvalidDonationID = errors.New("invalid donation id")
	ErrNoPickupLocation  = errors.New("donation has no pickup location")
)
