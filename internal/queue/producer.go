package queue

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/storage/mq"
)

// PublishWorkLogChanged announces an upsert so the worker can drop the
// affected cached views.
func PublishWorkLogChanged(msg WorkLogChangedMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = fmt.Sprintf("worklog_changed_%s", uuid.NewString())
	}
	if msg.OccurredAt == "" {
		msg.OccurredAt = time.Now().Format(time.RFC3339)
	}

	err := mq.PublishMessage(
		mq.ExchangeWorkLog,
		mq.RoutingKeyWorkLogChanged,
		msg,
	)
	if err != nil {
		logger.Logger.Error("Failed to publish work log change",
			zap.String("message_id", msg.MessageID),
			zap.Int64("user_id", msg.UserID),
			zap.String("date", msg.Date),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published work log change",
		zap.String("message_id", msg.MessageID),
		zap.Int64("user_id", msg.UserID),
		zap.String("date", msg.Date),
		zap.String("action", msg.Action),
	)

	return nil
}
