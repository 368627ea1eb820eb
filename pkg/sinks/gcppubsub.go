package sinks

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// gcpPubSubSink implements the Sink interface for Google Pub/Sub topics.
type gcpPubSubSink struct {
	id    string
	typ   string
	topic *pubsub.Topic
	log   Logger
}

// newGCPPubSubSink creates a new Pub/Sub sink with the given configuration.
func newGCPPubSubSink(ctx context.Context, cfg SinkConfig, log Logger) (Sink, error) {
	if cfg.GCPPubSub == nil {
		return nil, fmt.Errorf("sink %q missing gcppubsub configuration", cfg.ID)
	}
	return newGCPPubSubSinkWithOptions(ctx, cfg, log)
}

// newGCPPubSubSinkWithOptions allows tests to point the client at an emulator.
func newGCPPubSubSinkWithOptions(ctx context.Context, cfg SinkConfig, log Logger, opts ...option.ClientOption) (Sink, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := pubsub.NewClient(ctx, cfg.GCPPubSub.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}

	return &gcpPubSubSink{
		id:    cfg.ID,
		typ:   TypeGCPPubSub,
		topic: client.Topic(cfg.GCPPubSub.Topic),
		log:   ensureLogger(log),
	}, nil
}

func (g *gcpPubSubSink) ID() string   { return g.id }
func (g *gcpPubSubSink) Type() string { return g.typ }

// Deliver publishes the event to the configured topic and waits for the
// server acknowledgement.
func (g *gcpPubSubSink) Deliver(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	result := g.topic.Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"operation": evt.Operation,
		},
	})
	if _, err := result.Get(ctx); err != nil {
		g.log.ErrorObj("pubsub sink publish failed", "sink_pubsub_error", map[string]any{
			"sink_id": g.id,
			"error":   err.Error(),
		})
		return fmt.Errorf("publish to pubsub: %w", err)
	}
	return nil
}

// Close stops the topic's publish goroutines.
func (g *gcpPubSubSink) Close() error {
	if g == nil || g.topic == nil {
		return nil
	}
	g.topic.Stop()
	return nil
}
