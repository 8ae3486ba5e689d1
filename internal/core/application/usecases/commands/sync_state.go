package commands

import (
	"sync"
	"time"

	"restaurant/internal/core/domain/model/digitalmenu"
)

// SyncState is the in-process memory of the digital-menu sync: the ids
// already imported and the last status seen per synced order. The
// syncedToPOS flag in the feed stays the source of truth; this is a cache
// rebuilt from it on start-up.
//
// SyncState is safe for concurrent use; the status query reads it while a
// cycle runs.
type SyncState struct {
	mu         sync.RWMutex
	processed  map[string]struct{}
	lastStatus map[string]digitalmenu.Status
	running    bool
	lastCycle  time.Time
	lastError  string
}

func NewSyncState() *SyncState {
	return &SyncState{
		processed:  make(map[string]struct{}),
		lastStatus: make(map[string]digitalmenu.Status),
	}
}

// Restore replaces the cache with the given synced documents.
func (s *SyncState) Restore(synced []digitalmenu.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processed = make(map[string]struct{}, len(synced))
	s.lastStatus = make(map[string]digitalmenu.Status, len(synced))
	for _, doc := range synced {
		s.processed[doc.ID] = struct{}{}
		s.lastStatus[doc.ID] = doc.Status
	}
}

func (s *SyncState) IsProcessed(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.processed[id]
	return ok
}

// MarkProcessed records a completed import together with the status it was imported in.
func (s *SyncState) MarkProcessed(id string, status digitalmenu.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed[id] = struct{}{}
	s.lastStatus[id] = status
}

func (s *SyncState) LastStatus(id string) (digitalmenu.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.lastStatus[id]
	return status, ok
}

func (s *SyncState) SetLastStatus(id string, status digitalmenu.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastStatus[id] = status
}

func (s *SyncState) ProcessedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.processed)
}

func (s *SyncState) SetRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = running
}

func (s *SyncState) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// RecordCycle stores the end time and outcome of a poll cycle.
func (s *SyncState) RecordCycle(at time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCycle = at
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// LastCycle returns when the last cycle ended and its error text, if any.
func (s *SyncState) LastCycle() (time.Time, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCycle, s.lastError
}
