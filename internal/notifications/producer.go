package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"yelloride/internal/bookings"
	"yelloride/pkg/logger"
)

// KafkaProducerConfig contains configuration for the Kafka booking producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "booking-confirmed",
		RetryMax:         3,
		TimeoutMs:        10000,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
	}
}

// KafkaBookingProducer publishes booking lifecycle events to Kafka. It
// implements bookings.ConfirmationPublisher.
type KafkaBookingProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger
}

// NewKafkaBookingProducer creates a new Kafka booking producer
func NewKafkaBookingProducer(config *KafkaProducerConfig) (*KafkaBookingProducer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps all events for one booking on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaBookingProducer{
		producer: producer,
		config:   config,
		log:      logger.GetDefault(),
	}, nil
}

// PublishBookingConfirmed publishes a booking-confirmed event keyed by
// booking number.
func (p *KafkaBookingProducer) PublishBookingConfirmed(ctx context.Context, booking *bookings.Booking) error {
	event := NewBookingConfirmedEvent(booking)

	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.Topic,
		Key:   sarama.StringEncoder(event.BookingNumber),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("booking_id"), Value: []byte(event.BookingID.String())},
			{Key: []byte("region"), Value: []byte(event.Region)},
			{Key: []byte("producer"), Value: []byte("yelloride-api")},
		},
		Timestamp: event.ConfirmedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	p.log.InfoContext(ctx, "Booking event published",
		"topic", p.config.Topic,
		"partition", partition,
		"offset", offset,
		"booking_number", event.BookingNumber,
	)

	return nil
}

// Close closes the Kafka producer
func (p *KafkaBookingProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// interface guard
var _ bookings.ConfirmationPublisher = (*KafkaBookingProducer)(nil)
