package analytics

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Consumer consumes analytics events and persists them to the store.
type Consumer struct {
	subscriber message.Subscriber
	store      Store
	logger     *zap.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewConsumer creates a new analytics consumer.
func NewConsumer(subscriber message.Subscriber, store Store, logger *zap.Logger) *Consumer {
	return &Consumer{
		subscriber: subscriber,
		store:      store,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Start begins consuming messages from all analytics topics.
func (c *Consumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	createdMsgs, err := c.subscriber.Subscribe(ctx, TopicLinkCreated)
	if err != nil {
		return err
	}

	accessedMsgs, err := c.subscriber.Subscribe(ctx, TopicLinkAccessed)
	if err != nil {
		return err
	}

	uploadMsgs, err := c.subscriber.Subscribe(ctx, TopicUploadAuthorized)
	if err != nil {
		return err
	}

	go c.consumeLoop(ctx, createdMsgs, accessedMsgs, uploadMsgs)

	return nil
}

func (c *Consumer) consumeLoop(
	ctx context.Context, createdMsgs, accessedMsgs, uploadMsgs <-chan *message.Message,
) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-createdMsgs:
			if !ok {
				return
			}

			handleEvent(ctx, c, msg, TopicLinkCreated, c.store.SaveLinkCreated)
		case msg, ok := <-accessedMsgs:
			if !ok {
				return
			}

			handleEvent(ctx, c, msg, TopicLinkAccessed, c.store.SaveLinkAccessed)
		case msg, ok := <-uploadMsgs:
			if !ok {
				return
			}

			handleEvent(ctx, c, msg, TopicUploadAuthorized, c.store.SaveUploadAuthorized)
		}
	}
}

func handleEvent[T any](
	ctx context.Context,
	c *Consumer,
	msg *message.Message,
	topic string,
	save func(context.Context, *T) error,
) {
	var event T
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		c.logger.Error("failed to unmarshal event",
			zap.String("topic", topic),
			zap.Error(err),
		)
		msg.Nack()

		return
	}

	if err := save(ctx, &event); err != nil {
		c.logger.Error("failed to save event",
			zap.String("topic", topic),
			zap.Error(err),
		)
		msg.Nack()

		return
	}

	msg.Ack()

	c.logger.Debug("processed event", zap.String("topic", topic))
}

// Shutdown stops the consumer and waits for in-flight messages to complete.
func (c *Consumer) Shutdown() error {
	if c.cancel != nil {
		c.cancel()
	}

	<-c.done

	return nil
}
