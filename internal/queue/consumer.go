package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/internal/cache"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/storage/mq"
)

// StartWorkLogChangeConsumer processes change events by dropping the
// derived caches of the affected user and month. Readers rebuild them
// on the next request, so every client sees the write immediately.
func StartWorkLogChangeConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg WorkLogChangedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal work log change message: %w", err)
		}

		processed, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// Invalidation is idempotent, keep going on a failed check.
		} else if !processed {
			logger.Logger.Info("Message already processed or being processed, skipping",
				zap.String("message_id", msg.MessageID),
				zap.Int64("user_id", msg.UserID),
			)
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing work log change",
			zap.String("message_id", msg.MessageID),
			zap.Int64("user_id", msg.UserID),
			zap.String("date", msg.Date),
			zap.String("action", msg.Action),
		)

		if err := cache.InvalidateDerived(ctx, msg.UserID, msg.MonthKey); err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to invalidate derived caches: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(ctx, mq.ConsumeOptions{
		Queue:         mq.QueueWorkLogChanged,
		ConsumerTag:   "worklog_change_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartAllConsumers blocks until every consumer loop exits.
func StartAllConsumers(ctx context.Context) {
	var wg sync.WaitGroup

	consumers := []struct {
		name     string
		consumer func(context.Context) error
	}{
		{"worklog_change", StartWorkLogChangeConsumer},
	}

	for _, c := range consumers {
		wg.Add(1)
		go func(name string, consumer func(context.Context) error) {
			defer wg.Done()

			logger.Logger.Info("Starting consumer",
				zap.String("consumer_name", name),
			)

			if err := consumer(ctx); err != nil {
				logger.Logger.Error("Consumer exited with error",
					zap.String("consumer_name", name),
					zap.Error(err),
				)
			}
		}(c.name, c.consumer)
	}

	wg.Wait()
}
