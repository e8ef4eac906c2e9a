// Package events publishes committed domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/IBM/sarama"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/metrics"
)

type KafkaPublisher struct {
	producer sarama.AsyncProducer
	topic    string
	done     sync.WaitGroup
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers list is empty")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is empty")
	}
	producer, err := sarama.NewAsyncProducer(brokers, createSaramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return newKafkaPublisher(producer, topic), nil
}

func newKafkaPublisher(producer sarama.AsyncProducer, topic string) *KafkaPublisher {
	p := &KafkaPublisher{producer: producer, topic: topic}
	p.done.Add(1)
	go p.drainErrors()
	return p
}

// Publish hands the event to the producer. Messages are keyed by rental id so
// the events of one rental stay ordered within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(int(event.RentalID))),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("Event-Type"), Value: []byte(event.Type)},
		},
	}

	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		logger.Warn("Context cancelled before publishing event", "event", event.Type, "rentalID", event.RentalID, "error", ctx.Err())
		return ctx.Err()
	}
}

func (p *KafkaPublisher) drainErrors() {
	defer p.done.Done()
	for perr := range p.producer.Errors() {
		metrics.NotificationsSent.WithLabelValues("bus", "failed").Inc()
		logger.ExternalFailure("kafka", "produce", perr.Err, "topic", perr.Msg.Topic)
	}
}

// Close flushes buffered messages and waits for the producer to stop. Failed
// deliveries are logged by the error drain rather than returned.
func (p *KafkaPublisher) Close() {
	logger.Info("Closing Kafka producer")
	p.producer.AsyncClose()
	p.done.Wait()
}

func createSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Errors = true
	return config
}
