//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"donations/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetEligible(ctx context.Context) ([]entities.Courier, error)
	UpdateLocation(ctx context.Context, id int64, location entities.GeoPoint) (*entities.Courier, error)
}
