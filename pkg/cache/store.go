// Package cache implements the TTL persistence layer behind the dashboard:
// a timestamp-enveloped key-value store with lazy expiry over a pluggable
// substrate (memory, files on disk, or Redis). A handful of designated keys
// skip the envelope and live as raw scalar strings with no expiry.
package cache

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"go-jobdash-backend/internal/domain"
)

const probeKey = "__cache_probe__"

// Entry is the stored envelope for TTL-governed keys. It is replaced
// wholesale on every save; there are no partial updates.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Store implements domain.CacheStore. Every failure path is non-fatal:
// writes report false, reads report a miss, and the first substrate error
// logs a warning so broken persistence shows up exactly once.
type Store struct {
	substrate Substrate
	log       *slog.Logger
	now       func() time.Time
	warnOnce  sync.Once
}

func NewStore(substrate Substrate, log *slog.Logger) *Store {
	return &Store{
		substrate: substrate,
		log:       log,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Save wraps data in a timestamped envelope and writes it. Returns false,
// never an error, when serialization or the substrate write fails.
func (s *Store) Save(key string, data any) bool {
	payload, err := json.Marshal(data)
	if err != nil {
		s.log.Warn("cache save: marshal failed", "key", key, "error", err)
		return false
	}
	entry, err := json.Marshal(Entry{Data: payload, Timestamp: s.now().UnixMilli()})
	if err != nil {
		s.log.Warn("cache save: envelope marshal failed", "key", key, "error", err)
		return false
	}
	if err := s.substrate.Set(key, string(entry)); err != nil {
		s.warnUnavailable(err)
		return false
	}
	return true
}

// Load reads key into out if the entry exists, parses, and is younger than
// ttl (<= 0 means the default 30 minutes). Expired and corrupt entries are
// purged as a side effect before reporting a miss.
func (s *Store) Load(key string, ttl time.Duration, out any) bool {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}

	raw, found, err := s.substrate.Get(key)
	if err != nil {
		s.warnUnavailable(err)
		return false
	}
	if !found {
		return false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil || entry.Timestamp == 0 {
		s.log.Warn("cache load: corrupt entry purged", "key", key)
		_ = s.substrate.Delete(key)
		return false
	}

	age := s.now().UnixMilli() - entry.Timestamp
	if age > ttl.Milliseconds() {
		_ = s.substrate.Delete(key)
		return false
	}

	if err := json.Unmarshal(entry.Data, out); err != nil {
		s.log.Warn("cache load: payload unmarshal failed", "key", key, "error", err)
		return false
	}
	return true
}

// SaveRaw stores value as a bare scalar with no envelope and no expiry.
func (s *Store) SaveRaw(key, value string) bool {
	if err := s.substrate.Set(key, value); err != nil {
		s.warnUnavailable(err)
		return false
	}
	return true
}

// LoadRaw reads a bare scalar written by SaveRaw.
func (s *Store) LoadRaw(key string) (string, bool) {
	v, found, err := s.substrate.Get(key)
	if err != nil {
		s.warnUnavailable(err)
		return "", false
	}
	return v, found
}

// Remove deletes key unconditionally. Idempotent.
func (s *Store) Remove(key string) {
	if err := s.substrate.Delete(key); err != nil {
		s.warnUnavailable(err)
	}
}

// ClearAll removes every listed key.
func (s *Store) ClearAll(keys []string) {
	for _, k := range keys {
		s.Remove(k)
	}
}

// Status reports a diagnostic view per key without mutating anything —
// expired entries are flagged, not deleted, unlike Load. Raw scalar keys
// carry no timestamp, so age and expiry do not apply to them.
func (s *Store) Status(keys []string) []domain.CacheStatus {
	out := make([]domain.CacheStatus, 0, len(keys))
	for _, key := range keys {
		st := domain.CacheStatus{Key: key, Raw: domain.UnwrappedKey(key)}

		raw, found, err := s.substrate.Get(key)
		if err != nil || !found {
			out = append(out, st)
			continue
		}
		st.Exists = true
		st.SizeBytes = len(raw)

		if st.Raw {
			st.Valid = true
			out = append(out, st)
			continue
		}

		var entry Entry
		if jsonErr := json.Unmarshal([]byte(raw), &entry); jsonErr != nil || entry.Timestamp == 0 {
			out = append(out, st)
			continue
		}
		st.Valid = true
		ageMs := s.now().UnixMilli() - entry.Timestamp
		st.AgeSeconds = ageMs / 1000
		st.Expired = ageMs > domain.DefaultCacheTTL.Milliseconds()
		out = append(out, st)
	}
	return out
}

// Available probes the substrate with a harmless write+delete cycle.
// Callers should skip caching for the session when this reports false.
func (s *Store) Available() bool {
	if err := s.substrate.Set(probeKey, "1"); err != nil {
		s.warnUnavailable(err)
		return false
	}
	if err := s.substrate.Delete(probeKey); err != nil {
		s.warnUnavailable(err)
		return false
	}
	return true
}

func (s *Store) warnUnavailable(err error) {
	s.warnOnce.Do(func() {
		s.log.Warn("cache substrate unavailable, continuing without persistence", "error", err)
	})
}
