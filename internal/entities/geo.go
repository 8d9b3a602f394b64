package entities

type GeoPoint struct {
	Lat float64
	Lng float64
}

type DropPoint struct {
	Name     string
	Location GeoPoint
}

// RankedCourier pairs a courier with its great-circle distance to a
// donation pickup point, in kilometers rounded to 2 decimals.
type RankedCourier struct {
	Courier    Courier
	DistanceKM float64
}
