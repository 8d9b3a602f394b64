package geomatch

import (
	"math"
	"sort"
)

const (
	earthRadiusKM = 6371

	// DefaultLimit caps the ranked result when the caller does not
	// supply a positive limit.
	DefaultLimit = 10
)

type Point struct {
	Lat float64
	Lng float64
}

type Candidate struct {
	ID       int64
	Location *Point
}

type Ranked struct {
	ID         int64
	DistanceKM float64
}

// Distance returns the great-circle distance between two points in
// kilometers, rounded to 2 decimal places.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	d := 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
	return math.Round(d*100) / 100
}

// Nearest ranks candidates by distance to target, ascending, truncated
// to limit (DefaultLimit when limit <= 0). Candidates without a
// location are skipped, not an error. A nil target yields an empty
// result. The sort is stable, so equidistant candidates keep their
// input order and identical inputs always produce identical output.
func Nearest(target *Point, candidates []Candidate, limit int) []Ranked {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if target == nil {
		return []Ranked{}
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if c.Location == nil {
			continue
		}
		ranked = append(ranked, Ranked{
			ID:         c.ID,
			DistanceKM: Distance(*target, *c.Location),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKM < ranked[j].DistanceKM
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
