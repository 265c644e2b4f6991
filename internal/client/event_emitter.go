package client

import (
	"context"
	"encoding/json"

	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/bigex/backend/pkg/pubsub"
	"github.com/bigex/backend/pkg/xcontext"
)

// EventEmitter hands realtime events to the proxy processes.
type EventEmitter interface {
	Emit(ctx context.Context, ev *event.EventRequest) error
}

type kafkaEventEmitter struct {
	publisher pubsub.Publisher
}

func NewKafkaEventEmitter(publisher pubsub.Publisher) *kafkaEventEmitter {
	return &kafkaEventEmitter{publisher: publisher}
}

func (e *kafkaEventEmitter) Emit(ctx context.Context, ev *event.EventRequest) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return e.publisher.Publish(ctx, xcontext.Configs(ctx).Kafka.NotificationTopic, &pubsub.Pack{
		Key: []byte(ev.Metadata.To),
		Msg: b,
	})
}
