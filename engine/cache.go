package engine

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/board"
)

// CacheVersion is the current on-disk shape of CacheEntry (spec.md §4.7:
// "versioned, currently v1").
const CacheVersion = 1

// CacheEntry is what the results cache stores per state fingerprint.
type CacheEntry struct {
	Version       int             `json:"version"`
	AnalysisLevel int             `json:"analysis_level"`
	BestTurn      board.SimpleTurn `json:"best_turn"`
	Score         float64         `json:"score"`
	StatesVisited int64           `json:"states_visited"`
	ElapsedMs     int64           `json:"elapsed_ms"`
	LastUsedAt    time.Time       `json:"last_used_at"`
}

// Cache is the fingerprint -> CacheEntry results cache, backed by BadgerDB
// so suggested turns survive process restarts. Single-writer-at-a-time is
// sufficient (spec.md §5); badger's own transaction serialization provides
// that without any extra locking here.
type Cache struct {
	db *badger.DB
}

// OpenCache opens (creating if necessary) a badger-backed cache at dir.
func OpenCache(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get looks up fp, refreshing LastUsedAt on a hit (spec.md §4.7:
// "last_used_at is refreshed on every read").
func (c *Cache) Get(fp board.Fingerprint) (CacheEntry, bool, error) {
	var entry CacheEntry
	found := false

	err := c.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(fp))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		}); err != nil {
			return err
		}
		found = true
		entry.LastUsedAt = time.Now()
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return txn.Set(cacheKey(fp), data)
	})

	return entry, found, err
}

// Put overwrites the cache entry for fp. Per spec.md §5's no-partial-level
// guarantee, callers should only call Put once a level has fully completed.
func (c *Cache) Put(fp board.Fingerprint, entry CacheEntry) error {
	entry.Version = CacheVersion
	entry.LastUsedAt = time.Now()
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(fp), data)
	})
}

// Clear bulk-removes every cache entry (spec.md §4.7: "the host may
// bulk-clear").
func (c *Cache) Clear() error {
	return c.db.DropAll()
}

func cacheKey(fp board.Fingerprint) []byte {
	key := make([]byte, 0, len(cacheKeyPrefix)+len(fp))
	key = append(key, cacheKeyPrefix...)
	key = append(key, fp[:]...)
	return key
}

var cacheKeyPrefix = []byte("kdl:cache:")
