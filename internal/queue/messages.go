package queue

// Work log change actions.
const (
	ActionUpserted = "upserted"
)

// WorkLogChangedMessage tells the worker that a user's entries changed
// and which derived views to drop. MessageID makes redelivery
// idempotent.
type WorkLogChangedMessage struct {
	MessageID  string `json:"message_id"`
	UserID     int64  `json:"user_id"` // public snowflake ID
	Date       string `json:"date"`    // YYYY-MM-DD
	MonthKey   string `json:"month_key"`
	Action     string `json:"action"`
	OccurredAt string `json:"occurred_at"` // RFC3339
}
