package courier

import (
	"donations/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	courierEntity := &entities.Courier{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Role:      entities.ActorRole(c.Role),
		IsBlocked: c.IsBlocked,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.Lat != nil && c.Lng != nil {
		courierEntity.Location = &entities.GeoPoint{
			Lat: *c.Lat,
			Lng: *c.Lng,
		}
	}

	return courierEntity
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
