package reservation

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Severity of a user-facing notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier is a fire-and-forget notification sink called at each submission
// transition. No return value is consumed.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}

type logNotifier struct{}

// NewLogNotifier creates a notifier that records notifications in the log
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, severity Severity, message string) {
	event := log.Info()
	if severity == SeverityError {
		event = log.Warn()
	}
	event.Str("severity", string(severity)).Str("message", message).Msg("Notification")
}
