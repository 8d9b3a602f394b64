package donation

import "donations/internal/entities"

func ToDomain(d *DonationDB) *entities.Donation {
	if d == nil {
		return nil
	}

	donationEntity := &entities.Donation{
		ID:          d.ID,
		RequesterID: d.RequesterID,
		CourierID:   d.CourierID,
		Item:        d.Item,
		Quantity:    d.Quantity,
		Status:      entities.DonationStatusType(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}

	if d.PickupLat != nil && d.PickupLng != nil {
		donationEntity.Pickup = &entities.GeoPoint{
			Lat: *d.PickupLat,
			Lng: *d.PickupLng,
		}
	}

	if d.DropName != nil && d.DropLat != nil && d.DropLng != nil {
		donationEntity.Drop = &entities.DropPoint{
			Name: *d.DropName,
			Location: entities.GeoPoint{
				Lat: *d.DropLat,
				Lng: *d.DropLng,
			},
		}
	}

	return donationEntity
}
