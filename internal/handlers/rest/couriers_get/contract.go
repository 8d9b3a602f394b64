//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=couriers_get_test
package couriers_get

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
	// GetEligibleCouriers возвращает курьеров с ролью courier без блокировки.
	GetEligibleCouriers(ctx context.Context) ([]entities.Courier, error)
}
