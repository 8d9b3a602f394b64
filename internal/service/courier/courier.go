package courier

import (
	"context"
	"fmt"

	"donations/internal/entities"
)

// Courier is the directory of mobile agents: profile reads for the
// operator, eligibility listing for dispatch, and the out-of-band
// location feed couriers push while on the move.
type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courierEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	return courierEntity, nil
}

func (s *Courier) GetEligibleCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetEligible(ctx)
	if err != nil {
		return nil, fmt.Errorf("get eligible couriers: %w", err)
	}

	return couriers, nil
}

// UpdateCourierLocation accepts a courier's own position report.
// Staleness is tolerated downstream, so the write is a plain overwrite
// with no locking requirement.
func (s *Courier) UpdateCourierLocation(ctx context.Context, id int64, location entities.GeoPoint) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}
	if !isValidLatitude(location.Lat) || !isValidLongitude(location.Lng) {
		return nil, ErrInvalidLocation
	}

	// репозиторий обновляет только записи с ролью courier
	courierEntity, err := s.repository.UpdateLocation(ctx, id, location)
	if err != nil {
		return nil, fmt.Errorf("update courier location: %w", err)
	}

	return courierEntity, nil
}
