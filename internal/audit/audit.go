package audit

import (
	"github.com/cliqtrix/consulting-chatbot/internal/logging"
)

// Event records a business action for the audit trail.
type Event struct {
	Actor    string // email or phone that triggered the action
	Action   string // e.g. appointment_booked
	Entity   string // e.g. appointment, otp
	EntityID string
	Metadata map[string]any
}

// Logger writes audit events as structured log lines.
type Logger struct {
	log *logging.Logger
}

func New(log *logging.Logger) *Logger {
	if log == nil {
		log = logging.Default()
	}
	return &Logger{log: log}
}

func (l *Logger) Log(ev Event) {
	l.log.Info("audit",
		"actor", ev.Actor,
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
		"metadata", ev.Metadata,
	)
}
