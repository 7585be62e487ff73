package interfaces

import "context"

// PublisherInterface wraps the Pub/Sub client behind the SMS and
// reconciliation publishers.
type PublisherInterface interface {
	Publisher(topic string) TopicPublisherInterface
	Close() error
}

type TopicPublisherInterface interface {
	Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error)
}
