//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assign_post_test
package assign_post

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
	Commit(ctx context.Context, donationID string, courierID, actorID int64) (*entities.Donation, error)
}
