//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=donation_get_test
package donation_get

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
	GetDonation(ctx context.Context, id string) (*entities.Donation, error)
}
