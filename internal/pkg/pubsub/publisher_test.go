package pubsub

import (
	"context"
	"errors"
	"testing"

	"github.com/Cysparks-Inc/lendy-sub000/internal/service/interfaces"

	"cloud.google.com/go/pubsub/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPubSubClient struct {
	mock.Mock
}

func (m *MockPubSubClient) Publisher(topicName string) interfaces.TopicPublisherInterface {
	args := m.Called(topicName)
	return args.Get(0).(interfaces.TopicPublisherInterface)
}

func (m *MockPubSubClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockTopicPublisher struct {
	mock.Mock
}

func (m *MockTopicPublisher) Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, data, attributes)
	return args.String(0), args.Error(1)
}

type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) NewPublisher(ctx context.Context, projectID string) (interfaces.PublisherInterface, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(interfaces.PublisherInterface), args.Error(1)
}

func TestNewPubSubPublisher(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		ctx := context.Background()
		publisher, err := NewPubSubPublisher(ctx, "lendy-project")
		if err != nil {
			t.Skip("Skipping - GCP credentials not available")
		}
		assert.NoError(t, err)
		assert.NotNil(t, publisher)
		defer func() {
			if publisher != nil {
				publisher.Close()
			}
		}()
	})

	t.Run("empty project ID", func(t *testing.T) {
		ctx := context.Background()
		_, err := NewPubSubPublisher(ctx, "")
		assert.Error(t, err)
	})
}

func TestNewPubSubPublisherWithFactory(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		mockFactory := new(MockFactory)
		mockClient := new(MockPubSubClient)

		mockFactory.On("NewPublisher", mock.Anything, "lendy-project").Return(mockClient, nil)

		ctx := context.Background()
		publisher, err := NewPubSubPublisherWithFactory(ctx, "lendy-project", mockFactory)

		assert.NoError(t, err)
		assert.NotNil(t, publisher)

		mockFactory.AssertExpectations(t)
	})

	t.Run("factory error", func(t *testing.T) {
		mockFactory := new(MockFactory)
		mockFactory.On("NewPublisher", mock.Anything, "lendy-project").Return(nil, errors.New("factory error"))

		ctx := context.Background()
		publisher, err := NewPubSubPublisherWithFactory(ctx, "lendy-project", mockFactory)

		assert.Error(t, err)
		assert.Nil(t, publisher)
		mockFactory.AssertExpectations(t)
	})
}

func TestPubSubPublisher_Publish(t *testing.T) {
	mockFactory := new(MockFactory)
	mockClient := new(MockPubSubClient)
	mockTopicPublisher := new(MockTopicPublisher)

	mockFactory.On("NewPublisher", mock.Anything, "lendy-project").Return(mockClient, nil)

	ctx := context.Background()
	publisher, err := NewPubSubPublisherWithFactory(ctx, "lendy-project", mockFactory)
	assert.NoError(t, err)

	smsPayload := []byte(`{"phone":"254722000001","pattern_id":123}`)
	attributes := map[string]string{"loanId": "66aa00000000000000000001"}

	t.Run("successful publish", func(t *testing.T) {
		mockClient.On("Publisher", "sms-notifications").Return(mockTopicPublisher)
		mockTopicPublisher.On("Publish", mock.Anything, smsPayload, attributes).Return("sms-message-id", nil)

		messageID, err := publisher.Publish(ctx, "sms-notifications", smsPayload, attributes)

		assert.NoError(t, err)
		assert.Equal(t, "sms-message-id", messageID)
	})

	t.Run("publish error", func(t *testing.T) {
		mockClient.On("Publisher", "reconciliation-alerts").Return(mockTopicPublisher)
		mockTopicPublisher.On("Publish", mock.Anything, []byte(`{"excess_amount":"625.00"}`), mock.Anything).Return("", errors.New("publish failed"))

		messageID, err := publisher.Publish(ctx, "reconciliation-alerts", []byte(`{"excess_amount":"625.00"}`), nil)

		assert.Error(t, err)
		assert.Empty(t, messageID)
	})
}

func TestPubSubPublisher_Stop(t *testing.T) {
	mockFactory := new(MockFactory)
	mockClient := new(MockPubSubClient)

	mockFactory.On("NewPublisher", mock.Anything, "lendy-project").Return(mockClient, nil)

	ctx := context.Background()
	publisher, err := NewPubSubPublisherWithFactory(ctx, "lendy-project", mockFactory)
	assert.NoError(t, err)

	err = publisher.Stop(context.Background())
	assert.NoError(t, err)
}

func TestPubSubPublisher_Close(t *testing.T) {
	mockFactory := new(MockFactory)
	mockClient := new(MockPubSubClient)

	mockFactory.On("NewPublisher", mock.Anything, "lendy-project").Return(mockClient, nil)
	mockClient.On("Close").Return(nil)

	ctx := context.Background()
	publisher, err := NewPubSubPublisherWithFactory(ctx, "lendy-project", mockFactory)
	assert.NoError(t, err)

	err = publisher.Close()
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestDefaultPublisherFactory(t *testing.T) {
	factory := &defaultPublisherFactory{}

	t.Run("creation attempt", func(t *testing.T) {
		ctx := context.Background()
		client, err := factory.NewPublisher(ctx, "lendy-project")
		if err != nil {
			t.Skip("Skipping - GCP credentials not available")
		}
		assert.NoError(t, err)
		assert.NotNil(t, client)
		defer func() {
			if client != nil {
				client.Close()
			}
		}()
	})

	t.Run("empty project", func(t *testing.T) {
		ctx := context.Background()
		_, err := factory.NewPublisher(ctx, "")
		assert.Error(t, err)
	})
}

func TestDefaultPublisher(t *testing.T) {
	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, "lendy-project")
	if err != nil {
		t.Skip("Skipping - GCP credentials not available")
	}
	defer func() {
		if client != nil {
			client.Close()
		}
	}()

	publisher := &defaultPublisher{client: client}

	t.Run("get topic publisher", func(t *testing.T) {
		topicPublisher := publisher.Publisher("sms-notifications")
		assert.NotNil(t, topicPublisher)
	})

	t.Run("close publisher", func(t *testing.T) {
		err := publisher.Close()
		assert.NoError(t, err)
	})
}

func TestPubSubPublisher_EmptyPayload(t *testing.T) {
	mockFactory := new(MockFactory)
	mockClient := new(MockPubSubClient)
	mockTopicPublisher := new(MockTopicPublisher)

	mockFactory.On("NewPublisher", mock.Anything, "lendy-project").Return(mockClient, nil)
	mockClient.On("Publisher", "sms-notifications").Return(mockTopicPublisher)
	mockTopicPublisher.On("Publish", mock.Anything, []byte{}, mock.Anything).Return("empty-id", nil)

	ctx := context.Background()
	publisher, err := NewPubSubPublisherWithFactory(ctx, "lendy-project", mockFactory)
	assert.NoError(t, err)

	messageID, err := publisher.Publish(ctx, "sms-notifications", []byte{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "empty-id", messageID)
}

func TestPubSubPublisher_ConcurrentAccess(t *testing.T) {
	mockFactory := new(MockFactory)
	mockClient := new(MockPubSubClient)
	mockTopicPublisher := new(MockTopicPublisher)

	mockFactory.On("NewPublisher", mock.Anything, "lendy-project").Return(mockClient, nil)
	mockClient.On("Publisher", "sms-notifications").Return(mockTopicPublisher)
	mockTopicPublisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return("concurrent-id", nil)

	ctx := context.Background()
	publisher, err := NewPubSubPublisherWithFactory(ctx, "lendy-project", mockFactory)
	assert.NoError(t, err)

	done := make(chan bool, 5)
	for i := 0; i < 5; i++ {
		go func() {
			messageID, err := publisher.Publish(ctx, "sms-notifications", []byte(`{"phone":"254722000001"}`), nil)
			assert.NoError(t, err)
			assert.Equal(t, "concurrent-id", messageID)
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}
}
