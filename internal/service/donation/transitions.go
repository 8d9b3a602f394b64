package donation

import (
	"donations/internal/entities"
)

type transitionKey struct {
	actor  entities.ActorRole
	target entities.DonationStatusType
}

// transitionSources is the static transition table: which source status
// a given actor must leave from to reach the requested target. A
// combination absent from the table is illegal for that actor.
// Operator-initiated moves into "accepted" are the assignment path and
// go through Assign, never through Transition.
var transitionSources = map[transitionKey]entities.DonationStatusType{
	{entities.RoleOperator, entities.DonationRejected}:       entities.DonationPending,
	{entities.RoleCourier, entities.DonationCourierAccepted}: entities.DonationAccepted,
	{entities.RoleCourier, entities.DonationCourierRejected}: entities.DonationAccepted,
	{entities.RoleCourier, entities.DonationCollected}:       entities.DonationCourierAccepted,
	{entities.RoleCourier, entities.DonationNotFound}:        entities.DonationCourierAccepted,
	{entities.RoleCourier, entities.DonationDelivered}:       entities.DonationCollected,
}
