package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topics for report lifecycle events consumed by downstream tooling
// (campus maintenance dashboards, notification jobs).
const (
	TopicReportCreated = "campusnav.report.created"
	TopicReportUpdated = "campusnav.report.updated"
	TopicReportDeleted = "campusnav.report.deleted"
)

// ReportEvent is the wire payload for report lifecycle topics.
type ReportEvent struct {
	ReportID   uint      `json:"report_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event ReportEvent) error
	Close() error
}

// watermillPublisher adapts any watermill message.Publisher.
type watermillPublisher struct {
	pub    message.Publisher
	logger *slog.Logger
}

// NewGoChannelPublisher builds an in-process publisher. Used when no
// broker is configured; subscribers in the same process still see the
// events.
func NewGoChannelPublisher(logger *slog.Logger) EventPublisher {
	pub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &watermillPublisher{pub: pub, logger: logger}
}

// NewKafkaPublisher builds a broker-backed publisher.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (EventPublisher, error) {
	pub, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   brokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return &watermillPublisher{pub: pub, logger: logger}, nil
}

func (p *watermillPublisher) Publish(ctx context.Context, topic string, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.pub.Close()
}
