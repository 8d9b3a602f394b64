//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=donation_transition_post_test
package donation_transition_post

import (
	"context"

	"donations/internal/entities"
	"donations/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Transition(ctx context.Context, id string, actorRole entities.ActorRole, actorID int64, target entities.DonationStatusType) (*entities.Donation, error)
}
