package memory

import (
	"testing"

	"github.com/chronicle-hq/digital-chronicler/internal/config"
)

func TestResetRecordsTimestamp(t *testing.T) {
	mem := New(&config.Config{MemoryFile: "chronicler_memory.json"}, nil)

	if !mem.LastReset().IsZero() {
		t.Fatalf("LastReset should be zero before Reset")
	}

	mem.Reset()
	if mem.LastReset().IsZero() {
		t.Fatalf("LastReset not recorded")
	}

	if mem.Stories() != 0 || mem.URLs() != 0 || mem.Titles() != 0 {
		t.Fatalf("memory stub should hold no state")
	}
}
