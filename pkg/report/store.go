package report

import (
	"context"
	"sync"

	"github.com/transitlab/netlint/pkg/errors"
)

// Store persists reports for later retrieval, typically behind the HTTP
// API. Implementations must be safe for concurrent use.
type Store interface {
	// Put saves a report. An existing report with the same id is
	// overwritten.
	Put(ctx context.Context, rep *Report) error

	// Get returns the report with the given id, or an error with code
	// ErrCodeReportNotFound.
	Get(ctx context.Context, id string) (*Report, error)

	// Close releases store resources.
	Close(ctx context.Context) error
}

// MemoryStore keeps reports in process memory. Reports are lost on
// restart; use MongoStore for durable deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*Report
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*Report)}
}

// Put saves a report.
func (s *MemoryStore) Put(ctx context.Context, rep *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[rep.ID] = rep
	return nil
}

// Get returns the report with the given id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.reports[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeReportNotFound, "report %s not found", id)
	}
	return rep, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
