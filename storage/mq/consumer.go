package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
)

type MessageHandler func([]byte) error

type ConsumeOptions struct {
	Queue         string
	ConsumerTag   string
	PrefetchCount int
	Handler       MessageHandler
}

// Consume blocks, feeding deliveries from the queue to the handler
// until ctx is cancelled or the channel closes. A handler error nacks
// with requeue; success acks.
func Consume(ctx context.Context, opts ConsumeOptions) error {
	conn := Connection()
	if conn == nil {
		return fmt.Errorf("RabbitMQ connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if opts.PrefetchCount > 0 {
		if err := ch.Qos(opts.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	msgs, err := ch.Consume(
		opts.Queue,
		opts.ConsumerTag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logger.Logger.Info("Started consuming messages",
		zap.String("queue", opts.Queue),
		zap.String("consumer_tag", opts.ConsumerTag),
		zap.Int("prefetch_count", opts.PrefetchCount),
	)

	handler := func(body []byte) error {
		err := opts.Handler(body)
		if err != nil && !errors.IsSkip(err) {
			logger.Logger.Error("Failed to process message",
				zap.String("queue", opts.Queue),
				zap.String("consumer_tag", opts.ConsumerTag),
				zap.Error(err),
			)
		}
		return err
	}

	return consumeLoop(ctx, msgs, handler)
}

// consumeLoop settles deliveries until ctx is cancelled or the
// delivery channel closes. Cancellation returns nil so a shutdown is
// not reported as a consumer failure.
func consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery, handler MessageHandler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				return nil
			}

			if err := handler(msg.Body); err != nil {
				// A skip means the message is settled elsewhere; ack it
				// so it is not redelivered forever.
				if errors.IsSkip(err) {
					msg.Ack(false)
					continue
				}

				msg.Nack(false, true)
				continue
			}

			msg.Ack(false)
		}
	}
}
