//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=suggest_get_test
package suggest_get

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
	Suggest(ctx context.Context, donationID string, limit int) ([]entities.RankedCourier, error)
}
