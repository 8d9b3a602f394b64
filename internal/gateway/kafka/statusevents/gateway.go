package statusevents

import (
	"context"
	"encoding/json"
	"time"

	"donations/internal/entities"
	"donations/pkg/logger"
)

// StatusEventGateway публикует смены статуса донации в Kafka.
// Ошибки публикации не возвращаются вызывающему: смена статуса уже
// зафиксирована в базе, поэтому сбой доставки события только логируется.
type StatusEventGateway struct {
	log      logger.Logger
	producer producer
	topic    string
}

type statusChangedMessage struct {
	DonationID string    `json:"donation_ID"`
	From       string    `json:"from_status"`
	To         string    `json:"to_status"`
	ActorID    int64     `json:"actor_ID"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(log logger.Logger, producer producer, topic string) *StatusEventGateway {
	return &StatusEventGateway{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет событие с ключом donationID: события одной донации
// попадают в одну партицию и сохраняют порядок.
func (g *StatusEventGateway) Publish(ctx context.Context, change entities.StatusChange) {
	msg := statusChangedMessage{
		DonationID: change.DonationID,
		From:       string(change.From),
		To:         string(change.To),
		ActorID:    change.ActorID,
		OccurredAt: change.OccurredAt,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		EventsFailedTotal.WithLabelValues(g.topic, "marshal").Inc()
		g.log.Error("failed to marshal status event",
			logger.NewField("donation_id", change.DonationID),
			logger.NewField("error", err),
		)
		return
	}

	partition, offset, err := g.producer.SendMessage(g.topic, change.DonationID, payload)
	if err != nil {
		EventsFailedTotal.WithLabelValues(g.topic, "send").Inc()
		g.log.Error("failed to publish status event",
			logger.NewField("donation_id", change.DonationID),
			logger.NewField("error", err),
		)
		return
	}

	EventsPublishedTotal.WithLabelValues(g.topic, string(change.To)).Inc()
	g.log.Info("status event published",
		logger.NewField("donation_id", change.DonationID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
}
