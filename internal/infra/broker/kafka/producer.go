package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"venuedesk/internal/app/events"
)

const eventSource = "venuedesk"

// Producer publishes booking lifecycle events as JSON envelopes, one topic
// per event family.
type Producer struct {
	producer    sarama.SyncProducer
	topicPrefix string
}

func NewProducer(brokers []string, topicPrefix string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Version = sarama.V2_5_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: p, topicPrefix: topicPrefix}, nil
}

func (p *Producer) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(envelope{
		SpecVersion:     "1.0",
		ID:              uuid.NewString(),
		Type:            event.EventName() + ".v1",
		Source:          eventSource,
		Time:            event.OccurredAt().Format(time.RFC3339),
		DataContentType: "application/json",
		Data:            event,
	})
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topicFor(event.EventName()),
		Key:   sarama.StringEncoder(event.AggregateID()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("content-type"), Value: []byte("application/cloudevents+json")},
		},
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// topicFor maps "reservation.created" to "<prefix>reservation-events".
func (p *Producer) topicFor(eventName string) string {
	family := eventName
	if i := strings.IndexByte(eventName, '.'); i > 0 {
		family = eventName[:i]
	}
	return p.topicPrefix + family + "-events"
}

type envelope struct {
	SpecVersion     string       `json:"specversion"`
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	Source          string       `json:"source"`
	Time            string       `json:"time"`
	DataContentType string       `json:"datacontenttype"`
	Data            events.Event `json:"data"`
}
