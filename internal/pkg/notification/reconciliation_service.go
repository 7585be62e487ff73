package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/pubsub"
)

// ReconciliationService forwards overpayment alerts to the back-office queue.
// The excess amount is never applied or discarded by the engine; a human
// resolves it from this alert.
type ReconciliationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewReconciliationService(pubsubPublisher pubsub.PubSubPublisherInterface) *ReconciliationService {
	return &ReconciliationService{pubsubPublisher: pubsubPublisher}
}

func (r *ReconciliationService) PublishReconciliationAlert(ctx context.Context, alert models.ReconciliationAlert) error {
	payloadBytes, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal reconciliation alert: %w", err)
	}

	topicName := configs.PUBSUB_RECONCILIATION_TOPIC

	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := r.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, nil)
	if err != nil {
		logger.Error(ctx, "Failed to publish reconciliation alert to topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Published reconciliation alert for payment %v, message ID: %s", alert.PaymentGUID, messageID)
	return nil
}
