package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"

	kafkaservice "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type KafkaService struct {
}

func NewKafkaService() *KafkaService {
	return &KafkaService{}
}

// PublishLedgerEvent sends a single ledger event and waits for the delivery
// report. Failures are reported to the caller, which marks the source row for
// the retry endpoint instead of dropping the event.
func (s *KafkaService) PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	if KafkaProducer == nil {
		return fmt.Errorf("kafka producer not initialized")
	}
	topic := configs.KAFKA_LEDGER_TOPIC

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	deliveryChan := make(chan kafkaservice.Event, 1)
	err = KafkaProducer.producer.Produce(&kafkaservice.Message{
		TopicPartition: kafkaservice.TopicPartition{Topic: &topic, Partition: kafkaservice.PartitionAny},
		Value:          payload,
		Key:            []byte(event.EventId),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce ledger event: %w", err)
	}

	e := <-deliveryChan
	m, ok := e.(*kafkaservice.Message)
	if !ok {
		return fmt.Errorf("unexpected kafka event type %T", e)
	}
	if m.TopicPartition.Error != nil {
		logger.Error(ctx, "ledger event delivery failed: %v", m.TopicPartition.Error)
		return m.TopicPartition.Error
	}

	logger.Info(ctx, "ledger event %v delivered to %v", event.EventId, m.TopicPartition)
	return nil
}
