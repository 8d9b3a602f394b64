package status_metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"donations/internal/entities"
)

var donationsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "donations_by_status",
		Help: "Current number of donations per status",
	},
	[]string{"status"},
)

type Service interface {
	CountByStatus(ctx context.Context) (map[entities.DonationStatusType]int64, error)
}

type StatusMetrics struct {
	service  Service
	interval time.Duration
}

func NewStatusMetrics(service Service, interval time.Duration) *StatusMetrics {
	return &StatusMetrics{
		service:  service,
		interval: interval,
	}
}

func (s *StatusMetrics) TTL() time.Duration {
	return s.interval
}

func (s *StatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// Нулевые статусы тоже публикуем, иначе gauge застревает на старом значении
	for _, status := range allStatuses {
		donationsByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (s *StatusMetrics) Info() string {
	return "donation status metrics"
}

var allStatuses = []entities.DonationStatusType{
	entities.DonationPending,
	entities.DonationAccepted,
	entities.DonationRejected,
	entities.DonationCourierRejected,
	entities.DonationCourierAccepted,
	entities.DonationCollected,
	entities.DonationNotFound,
	entities.DonationDelivered,
}
