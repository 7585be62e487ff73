package producer

import (
	"context"
	"time"

	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type Producer struct {
	producer *kafka.Producer
	topic    string
}

var KafkaProducer *Producer

func NewKafkaProducer(broker, topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// SendMessageBatch publishes the given keyed payloads to the ledger topic,
// retrying each message with linear backoff. Returns the keys that made it and
// the keys that did not; the caller flips the kafkaFlag on the successes.
func SendMessageBatch(ctx context.Context, kafkaProducer *Producer, messages map[string][]byte, topic string, retryCount int) ([]string, []string, error) {

	var successIDs []string
	var failedIDs []string

	kafkaMessages := make([]*kafka.Message, 0, len(messages))
	for key, payload := range messages {
		kafkaMessages = append(kafkaMessages, &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Value:          payload,
			Key:            []byte(key),
		})
	}

	for _, kafkaMsg := range kafkaMessages {
		success := false
		for attempt := 0; attempt <= retryCount; attempt++ {
			err := kafkaProducer.producer.Produce(kafkaMsg, nil)
			if err == nil {
				logger.Info(ctx, "kafka ledger message sent successfully")
				success = true
				break
			}
			logger.Error(ctx, "Failed to send Kafka message on attempt %d: %v", attempt+1, err)
			time.Sleep(time.Second * time.Duration(attempt+1))
		}
		if success {
			successIDs = append(successIDs, string(kafkaMsg.Key))
		} else {
			failedIDs = append(failedIDs, string(kafkaMsg.Key))
		}
	}
	// Wait for all messages to be delivered
	kafkaProducer.producer.Flush(15 * 1000)
	return successIDs, failedIDs, nil
}

func (p *Producer) Close() {
	p.producer.Close()
}
