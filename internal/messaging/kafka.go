package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/pkg/models"
)

const DefaultRatingEventsTopic = "rating-events"

// RatingEvent is published on every successful rating upsert so
// downstream consumers can track rating activity.
type RatingEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Rating    float64   `json:"rating"`
	Timestamp int64     `json:"timestamp"`
	EmittedAt time.Time `json:"emitted_at"`
}

type Producer struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

// NewProducer returns nil when no brokers are configured; callers treat
// a nil producer as "publishing disabled".
func NewProducer(cfg *config.Config, logger *logrus.Logger) *Producer {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("No Kafka brokers configured, rating events disabled")
		return nil
	}

	topic := cfg.Kafka.Topics.RatingEvents
	if topic == "" {
		topic = DefaultRatingEventsTopic
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{}, // key by user id
			RequiredAcks: kafka.RequireOne,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		logger: logger,
	}
}

func (p *Producer) PublishRating(ctx context.Context, rating models.Rating) error {
	event := RatingEvent{
		EventID:   uuid.New(),
		UserID:    rating.UserID,
		MovieID:   rating.MovieID,
		Rating:    rating.Rating,
		Timestamp: rating.Timestamp,
		EmittedAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal rating event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(rating.UserID, 10)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write rating event: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"event_id": event.EventID,
		"user_id":  rating.UserID,
		"movie_id": rating.MovieID,
	}).Debug("Rating event published")

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
