package sinks

import (
	"context"
	"testing"
	"time"

	"github.com/chronicle-hq/digital-chronicler/internal/domain"
)

func TestBoltSinkArchivesEvents(t *testing.T) {
	dir := t.TempDir()
	sinkRaw, err := newBoltSink(context.Background(), SinkConfig{
		ID:   "archive",
		Type: TypeBolt,
		Bolt: &BoltSinkConfig{Path: dir + "/archive.db"},
	}, nil)
	if err != nil {
		t.Fatalf("newBoltSink: %v", err)
	}
	sink := sinkRaw.(*boltSink)
	defer sink.Close()

	for i := 0; i < 3; i++ {
		evt := Event{
			Operation: "run_cycle",
			Article:   domain.Article{GeneratedTitle: "Archived Story"},
			EmittedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		}
		if err := sink.Deliver(context.Background(), evt); err != nil {
			t.Fatalf("Deliver: %v", err)
		}
	}

	n, err := sink.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Fatalf("Count = %d, want 3", n)
	}
}
