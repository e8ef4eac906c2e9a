package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go4rent-backend/internal/domain"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, nil)
	ev := domain.Event{
		Type:         domain.RentalEventType(domain.RentalStatusApproved),
		RentalID:     42,
		EquipmentID:  7,
		RenterID:     3,
		RentalStatus: domain.RentalStatusApproved,
		OccurredAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	producer.ExpectInputWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "rental-events" {
			return errors.New("wrong topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil || string(key) != "42" {
			return errors.New("wrong key")
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got domain.Event
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.Type != ev.Type || got.RentalID != ev.RentalID {
			return errors.New("wrong payload")
		}
		return nil
	})

	p := newKafkaPublisher(producer, "rental-events")
	require.NoError(t, p.Publish(context.Background(), ev))
	p.Close()
}

func TestKafkaPublisher_DeliveryFailureIsDrained(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, nil)
	producer.ExpectInputAndFail(sarama.ErrOutOfBrokers)

	p := newKafkaPublisher(producer, "rental-events")
	assert.NoError(t, p.Publish(context.Background(), domain.Event{Type: domain.EventRentalRequested, RentalID: 1}))
	p.Close()
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "topic")
	assert.Error(t, err)
	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "")
	assert.Error(t, err)
}
