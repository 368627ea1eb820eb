package sinks

import (
	"time"

	"github.com/chronicle-hq/digital-chronicler/internal/domain"
)

// Event is the payload delivered to output sinks.
type Event struct {
	Operation string         `json:"operation"`
	Article   domain.Article `json:"article"`
	EmittedAt time.Time      `json:"emitted_at"`
}

// NewEvent wraps an article produced by the named operation.
func NewEvent(operation string, article domain.Article) Event {
	return Event{
		Operation: operation,
		Article:   article,
		EmittedAt: time.Now().UTC(),
	}
}
