package document

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/darshan103/chatpdfbackend/models"
)

// DocumentStore holds extracted document text keyed by document ID. Every
// Put also advances the "latest" pointer, so callers that do not track IDs
// still get the most recently uploaded document.
type DocumentStore interface {
	// Put stores the document and marks it as the latest upload.
	Put(ctx context.Context, doc *models.Document) error
	// Get returns the document with the given ID, or nil when it is
	// unknown or has expired.
	Get(ctx context.Context, id string) (*models.Document, error)
	// Latest returns the most recently stored document, or nil when no
	// upload has happened (or the latest upload has expired).
	Latest(ctx context.Context) (*models.Document, error)
}

type memoryEntry struct {
	doc       *models.Document
	expiresAt time.Time
}

// MemoryDocumentStore is an in-process DocumentStore with TTL and size-cap
// eviction. It is the default when no redis address is configured.
type MemoryDocumentStore struct {
	mu       sync.Mutex
	entries  map[string]*memoryEntry
	latestID string
	ttl      time.Duration
	cap      int

	now func() time.Time
}

// NewMemoryDocumentStore creates a store bounded by ttl and a maximum number
// of held documents. A cap of 0 means unbounded.
func NewMemoryDocumentStore(ttl time.Duration, cap int) *MemoryDocumentStore {
	return &MemoryDocumentStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		cap:     cap,
		now:     time.Now,
	}
}

func (s *MemoryDocumentStore) Put(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	if s.cap > 0 && len(s.entries) >= s.cap {
		if _, replacing := s.entries[doc.ID]; !replacing {
			s.evictOldestLocked()
		}
	}

	s.entries[doc.ID] = &memoryEntry{doc: doc, expiresAt: s.now().Add(s.ttl)}
	s.latestID = doc.ID
	return nil
}

func (s *MemoryDocumentStore) Get(_ context.Context, id string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, nil
	}
	return entry.doc, nil
}

func (s *MemoryDocumentStore) Latest(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	id := s.latestID
	s.mu.Unlock()
	if id == "" {
		return nil, nil
	}
	return s.Get(ctx, id)
}

// evictExpiredLocked drops every entry past its deadline.
func (s *MemoryDocumentStore) evictExpiredLocked() {
	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// evictOldestLocked removes the entry closest to expiry to make room.
func (s *MemoryDocumentStore) evictOldestLocked() {
	if len(s.entries) == 0 {
		return
	}
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.entries[ids[i]].expiresAt.Before(s.entries[ids[j]].expiresAt)
	})
	delete(s.entries, ids[0])
}
