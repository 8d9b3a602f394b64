package entities

import (
	"time"
)

// Courier is the dispatch-relevant subset of an actor record. Only
// actors with RoleCourier and IsBlocked=false are eligible for
// suggestions and new assignments; blocking does not unassign in-flight
// work.
type Courier struct {
	ID        int64
	Name      string
	Phone     string
	Role      ActorRole
	IsBlocked bool
	Location  *GeoPoint
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ActorRole string

const (
	RoleDonor    ActorRole = "donor"
	RoleOperator ActorRole = "operator"
	RoleCourier  ActorRole = "courier"
)

func (r ActorRole) String() string {
	return string(r)
}

type CourierModify struct {
	ID        *int64
	Name      *string
	Phone     *string
	IsBlocked *bool
	Location  *GeoPoint
}
