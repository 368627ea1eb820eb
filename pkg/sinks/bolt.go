package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const chronicleBucket = "chronicles"

// boltSink archives delivered events in a local bbolt database, keyed by
// emission time plus title slug. It is an output archive, not a dedup store.
type boltSink struct {
	id  string
	typ string
	db  *bolt.DB
}

func newBoltSink(_ context.Context, cfg SinkConfig, _ Logger) (Sink, error) {
	if cfg.Bolt == nil {
		return nil, fmt.Errorf("sink %q missing bolt configuration", cfg.ID)
	}

	path := cfg.Bolt.Path
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(chronicleBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &boltSink{
		id:  cfg.ID,
		typ: TypeBolt,
		db:  db,
	}, nil
}

func (b *boltSink) ID() string   { return b.id }
func (b *boltSink) Type() string { return b.typ }

// Deliver stores the event JSON under a time-ordered key.
func (b *boltSink) Deliver(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	key := fmt.Sprintf("%020d-%s", evt.EmittedAt.UnixNano(), slug(evt.Article.GeneratedTitle))
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(chronicleBucket))
		if bucket == nil {
			return fmt.Errorf("chronicle bucket missing")
		}
		return bucket.Put([]byte(key), payload)
	})
}

// Count reports the number of archived events.
func (b *boltSink) Count() (int, error) {
	var n int
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(chronicleBucket))
		if bucket == nil {
			return fmt.Errorf("chronicle bucket missing")
		}
		n = bucket.Stats().KeyN
		return nil
	})
	return n, err
}

// Close closes the underlying database.
func (b *boltSink) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
