//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=donation_put_test
package donation_put

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
	UpdateDonation(ctx context.Context, donationModify entities.DonationModify) (*entities.Donation, error)
}
