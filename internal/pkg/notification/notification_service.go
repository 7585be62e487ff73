package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/pubsub"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/store"
)

type MessagesRepo interface {
	GetMessageID(ctx context.Context, event string, branchId primitive.ObjectID) (*models.MessageResponse, error)
}

// NotificationService resolves the SMS pattern configured for an engine event
// and hands the rendered request to the delivery pipeline over pubsub. The
// engine never talks to an SMS gateway directly.
type NotificationService struct {
	messageRepo     MessagesRepo
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		messageRepo:     store.NewMessagesRepository(),
		pubsubPublisher: pubsubPublisher,
	}
}

func NewNotificationServiceWithRepo(messageRepo MessagesRepo, pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		messageRepo:     messageRepo,
		pubsubPublisher: pubsubPublisher,
	}
}

// NotifyMember sends the SMS mapped to event to the given phone. parameters
// supplies values for the placeholders the pattern declares; placeholders
// with no supplied value go out empty rather than failing the send.
func (h *NotificationService) NotifyMember(ctx context.Context, phone string, event string, branchId primitive.ObjectID, parameters map[string]string) error {
	response, err := h.messageRepo.GetMessageID(ctx, event, branchId)
	if err != nil {
		return err
	}

	notifParameters := h.getValuesOfParameters(response.Parameters, phone, parameters)

	smsRequest := models.SmsNotificationRequest{
		Phone:           phone,
		SmsDbEventName:  event,
		NotifParameters: notifParameters,
		PatternID:       response.MessageID,
	}

	logger.Info(ctx, "NotifyMember event: %v PatternID: %v", event, response.MessageID)

	payloadBytes, err := json.Marshal(smsRequest)
	if err != nil {
		logger.Error(ctx, "Failed to marshal SMS notification request: %v", err)
		return fmt.Errorf("failed to marshal SMS request: %w", err)
	}

	topicName := configs.PUBSUB_NOTIFICATION_TOPIC

	// Detached timeout so an already-answered HTTP request cannot cancel the
	// publish mid-flight.
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, nil)
	if err != nil {
		logger.Error(ctx, "Failed to publish SMS notification to PubSub topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Published SMS notification to topic %s with message ID: %s", topicName, messageID)
	return nil
}

func (h *NotificationService) getValuesOfParameters(parameters []string, phone string, values map[string]string) []models.SmsNotificationParameter {
	var result []models.SmsNotificationParameter

	for _, param := range parameters {
		value := values[param]
		if param == consts.MemberPhone {
			value = phone
		}
		result = append(result, models.SmsNotificationParameter{
			Name:  param,
			Value: value,
		})
	}

	return result
}
