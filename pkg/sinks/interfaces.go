package sinks

import "context"

// Sink delivers article events to a downstream surface (file, HTTP, SQS, etc).
type Sink interface {
	ID() string
	Type() string
	Deliver(ctx context.Context, evt Event) error
}
