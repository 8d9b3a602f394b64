//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_location_put_test
package courier_location_put

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
	UpdateCourierLocation(ctx context.Context, id int64, location entities.GeoPoint) (*entities.Courier, error)
}
