package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

type PaymentStoreInterface interface {
	GetFailedKafkaEntries(context.Context, int32) ([]models.Payments, error)
	SetKafkaFlag(context.Context, []string) ([]string, error)
}

type LedgerRetryService struct {
	paymentStore PaymentStoreInterface
}

func NewLedgerRetryService(paymentStore PaymentStoreInterface) *LedgerRetryService {
	return &LedgerRetryService{paymentStore: paymentStore}
}

// RetryLedgerEvents re-publishes payment ledger events whose kafkaFlag is
// still false within the retry window, then flips the flag on the ones that
// went through.
func (ks *LedgerRetryService) RetryLedgerEvents(ctx context.Context) ([]string, []string, error) {
	topic := configs.KAFKA_LEDGER_TOPIC
	server := configs.KAFKA_SERVER
	if KafkaProducer == nil {
		producer, err := NewKafkaProducer(server, topic)
		if err != nil {
			logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
			return nil, nil, err
		}
		logger.Info(ctx, "Kafka Producer Created")
		KafkaProducer = producer
	}

	payments, err := ks.paymentStore.GetFailedKafkaEntries(ctx, int32(configs.KAFKA_RETRY_DURATION))
	if err != nil {
		return nil, nil, err
	}
	if len(payments) == 0 {
		return nil, nil, fmt.Errorf("no unpublished ledger events found in the duration")
	}

	messages := make(map[string][]byte, len(payments))
	for _, p := range payments {
		event := models.LedgerEvent{
			EventId:       p.GUID,
			EventType:     consts.LedgerPaymentApplied,
			LoanId:        p.LoanId.Hex(),
			Amount:        p.Amount.String(),
			ActingUserId:  p.RecordedBy.Hex(),
			EventDatetime: p.PaymentDate,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			logger.Error(ctx, "failed to marshal ledger event for payment %v: %v", p.GUID, err)
			continue
		}
		messages[p.PaymentId.Hex()] = payload
	}
	if len(messages) == 0 {
		return nil, nil, fmt.Errorf("no publishable ledger events found in the duration")
	}

	successMessagesId, failedMessagesId, err := SendMessageBatch(ctx, KafkaProducer, messages, topic, 2)
	if err != nil {
		return nil, nil, err
	}

	failedList, err := ks.paymentStore.SetKafkaFlag(ctx, successMessagesId)
	if err != nil {
		return successMessagesId, failedMessagesId, fmt.Errorf("error updating Kafka flag in database for payments %v with error %v", failedList, err)
	}
	return successMessagesId, failedMessagesId, nil
}
