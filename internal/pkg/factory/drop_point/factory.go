package drop_point

import (
	"errors"
	"math/rand/v2"

	"donations/internal/entities"
)

var ErrNoDropPoints = errors.New("no drop points configured")

// RandomPicker выбирает точку выдачи равновероятно из настроенного списка.
type RandomPicker struct {
	points []entities.DropPoint
}

func New(points []entities.DropPoint) *RandomPicker {
	return &RandomPicker{
		points: points,
	}
}

func (p *RandomPicker) Pick() (entities.DropPoint, error) {
	if len(p.points) == 0 {
		return entities.DropPoint{}, ErrNoDropPoints
	}
	return p.points[rand.IntN(len(p.points))], nil
}
