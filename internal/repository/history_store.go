package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

// HistoryStore implements domain.HistoryRepository under the "log" key
type HistoryStore struct {
	kv domain.KeyValueStore
}

func NewHistoryStore(kv domain.KeyValueStore) *HistoryStore {
	return &HistoryStore{kv: kv}
}

// Load returns the persisted log, newest first, or an empty log when the
// key is missing or unreadable
func (s *HistoryStore) Load(ctx context.Context) []domain.HistoryEntry {
	data, err := s.kv.Get(ctx, domain.KeyLog)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("Warning: failed to read workout log: %v", err)
		}
		return []domain.HistoryEntry{}
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Warning: discarding unreadable workout log: %v", err)
		return []domain.HistoryEntry{}
	}
	if entries == nil {
		return []domain.HistoryEntry{}
	}
	if len(entries) > domain.MaxHistoryEntries {
		entries = entries[:domain.MaxHistoryEntries]
	}
	return entries
}

// Replace persists entries, keeping the newest MaxHistoryEntries
func (s *HistoryStore) Replace(ctx context.Context, entries []domain.HistoryEntry) {
	if len(entries) > domain.MaxHistoryEntries {
		entries = entries[:domain.MaxHistoryEntries]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		log.Printf("Warning: failed to encode workout log: %v", err)
		return
	}
	if err := s.kv.Set(ctx, domain.KeyLog, data); err != nil {
		log.Printf("Warning: failed to persist workout log: %v", err)
	}
}

func (s *HistoryStore) Clear(ctx context.Context) {
	if err := s.kv.Remove(ctx, domain.KeyLog); err != nil {
		log.Printf("Warning: failed to clear workout log: %v", err)
	}
}
