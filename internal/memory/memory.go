package memory

import (
	"time"

	"github.com/chronicle-hq/digital-chronicler/internal/config"
	"github.com/chronicle-hq/digital-chronicler/internal/logger"
)

// Memory is a placeholder for future story deduplication. It holds no
// queryable state; Reset only records that a reset occurred. Retained for
// interface compatibility with a fuller version.
type Memory struct {
	cfg     *config.Config
	log     logger.Logger
	resetAt time.Time
}

// New builds the memory handle from config.
func New(cfg *config.Config, log logger.Logger) *Memory {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Memory{cfg: cfg, log: log}
}

// Reset records a memory reset.
func (m *Memory) Reset() {
	m.resetAt = time.Now()
	m.log.InfoObj("memory reset", "memory_file", m.cfg.MemoryFile)
}

// LastReset returns when Reset was last called, zero if never.
func (m *Memory) LastReset() time.Time { return m.resetAt }

// Stories reports the number of remembered stories.
func (m *Memory) Stories() int { return 0 }

// URLs reports the number of remembered URLs.
func (m *Memory) URLs() int { return 0 }

// Titles reports the number of remembered titles.
func (m *Memory) Titles() int { return 0 }
