package courier

import "time"

type CourierDB struct {
	ID        int64
	Name      string
	Phone     string
	Role      string
	IsBlocked bool
	Lat       *float64
	Lng       *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
