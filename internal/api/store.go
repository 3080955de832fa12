package api

import (
	"sync"
	"time"
)

// defaultStoreLimit bounds how many rendered charts the preview server
// keeps in memory before evicting the oldest.
const defaultStoreLimit = 128

// StoredChart is one rendered image kept for later retrieval.
type StoredChart struct {
	ID          string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// ChartStore is an in-memory, bounded store of rendered charts.
type ChartStore struct {
	mu     sync.Mutex
	limit  int
	order  []string
	charts map[string]StoredChart
}

// NewChartStore creates an empty store with the default size limit.
func NewChartStore() *ChartStore {
	return &ChartStore{
		limit:  defaultStoreLimit,
		charts: make(map[string]StoredChart),
	}
}

// Put stores a chart, evicting the oldest entry when over the limit.
func (s *ChartStore) Put(ch StoredChart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.charts[ch.ID]; !exists {
		s.order = append(s.order, ch.ID)
	}
	s.charts[ch.ID] = ch

	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.charts, oldest)
	}
}

// Get returns a stored chart by id.
func (s *ChartStore) Get(id string) (StoredChart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.charts[id]
	return ch, ok
}

// Len reports how many charts are currently stored.
func (s *ChartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.charts)
}
