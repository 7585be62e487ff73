package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

type MockMessagesRepo struct {
	mock.Mock
}

func (m *MockMessagesRepo) GetMessageID(ctx context.Context, event string, branchId primitive.ObjectID) (*models.MessageResponse, error) {
	args := m.Called(ctx, event, branchId)
	if args.Get(0) != nil {
		return args.Get(0).(*models.MessageResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPubSubPublisher struct {
	mock.Mock
}

func (m *MockPubSubPublisher) Publish(ctx context.Context, topic string, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, topic, data, attributes)
	return args.String(0), args.Error(1)
}

func (m *MockPubSubPublisher) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPubSubPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestNotifyMember_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	branchId := primitive.NewObjectID()

	mockMsgRepo := new(MockMessagesRepo)
	mockPubSub := new(MockPubSubPublisher)

	mockMsgRepo.On("GetMessageID", ctx, consts.PaymentReceived, branchId).
		Return(&models.MessageResponse{MessageID: 123, Parameters: []string{consts.MemberPhone, consts.AmountCollected, consts.RemainingLoanAmount}}, nil)
	mockPubSub.On("Publish", mock.Anything, mock.Anything, mock.MatchedBy(func(data []byte) bool {
		var request models.SmsNotificationRequest
		if err := json.Unmarshal(data, &request); err != nil {
			return false
		}
		return request.PatternID == 123 &&
			request.Phone == "254700000001" &&
			len(request.NotifParameters) == 3 &&
			request.NotifParameters[0].Value == "254700000001" &&
			request.NotifParameters[1].Value == "1375.00" &&
			request.NotifParameters[2].Value == "9625.00"
	}), mock.Anything).Return("msg-123", nil)

	svc := NewNotificationServiceWithRepo(mockMsgRepo, mockPubSub)

	err := svc.NotifyMember(ctx, "254700000001", consts.PaymentReceived, branchId, map[string]string{
		consts.AmountCollected:     "1375.00",
		consts.RemainingLoanAmount: "9625.00",
	})
	require.NoError(t, err)

	mockMsgRepo.AssertExpectations(t)
	mockPubSub.AssertExpectations(t)
}

func TestNotifyMember_PubSubFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	branchId := primitive.NewObjectID()

	mockMsgRepo := new(MockMessagesRepo)
	mockPubSub := new(MockPubSubPublisher)

	mockMsgRepo.On("GetMessageID", ctx, consts.LoanApproved, branchId).
		Return(&models.MessageResponse{MessageID: 456, Parameters: []string{consts.LoanAmount}}, nil)
	mockPubSub.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("pubsub publish failed"))

	svc := NewNotificationServiceWithRepo(mockMsgRepo, mockPubSub)

	err := svc.NotifyMember(ctx, "254700000001", consts.LoanApproved, branchId, map[string]string{consts.LoanAmount: "10000.00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish to pubsub")

	mockMsgRepo.AssertExpectations(t)
	mockPubSub.AssertExpectations(t)
}

func TestNotifyMember_MessageLookupFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	branchId := primitive.NewObjectID()

	mockMsgRepo := new(MockMessagesRepo)
	mockPubSub := new(MockPubSubPublisher)

	mockMsgRepo.On("GetMessageID", ctx, "UnknownEvent", branchId).
		Return(nil, errors.New("no pattern configured"))

	svc := NewNotificationServiceWithRepo(mockMsgRepo, mockPubSub)

	err := svc.NotifyMember(ctx, "254700000001", "UnknownEvent", branchId, nil)
	require.Error(t, err)
	mockPubSub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetValuesOfParameters(t *testing.T) {
	t.Parallel()
	svc := &NotificationService{}

	params := []string{consts.MemberPhone, consts.LoanAmount, "unknownParam"}
	values := map[string]string{consts.LoanAmount: "10000.00"}

	res := svc.getValuesOfParameters(params, "254700000001", values)

	assert.Len(t, res, len(params))
	assert.Equal(t, "254700000001", res[0].Value)
	assert.Equal(t, "10000.00", res[1].Value)
	// Unmapped placeholders go out empty rather than failing the send.
	assert.Equal(t, "", res[2].Value)
}

func TestPublishReconciliationAlert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockPubSub := new(MockPubSubPublisher)
		mockPubSub.On("Publish", mock.Anything, mock.Anything, mock.MatchedBy(func(data []byte) bool {
			var alert models.ReconciliationAlert
			if err := json.Unmarshal(data, &alert); err != nil {
				return false
			}
			return alert.ExcessAmount == "625.00"
		}), mock.Anything).Return("msg-789", nil)

		svc := NewReconciliationService(mockPubSub)
		err := svc.PublishReconciliationAlert(ctx, models.ReconciliationAlert{
			LoanId:       primitive.NewObjectID().Hex(),
			PaymentGUID:  "guid-1",
			ExcessAmount: "625.00",
			RecordedBy:   primitive.NewObjectID().Hex(),
		})
		require.NoError(t, err)
		mockPubSub.AssertExpectations(t)
	})

	t.Run("Publish Failure", func(t *testing.T) {
		mockPubSub := new(MockPubSubPublisher)
		mockPubSub.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("pubsub down"))

		svc := NewReconciliationService(mockPubSub)
		err := svc.PublishReconciliationAlert(ctx, models.ReconciliationAlert{PaymentGUID: "guid-2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish to pubsub")
	})
}
