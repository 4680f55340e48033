package store

import (
	"context"
	"sort"
	"sync"

	"github.com/talkincode/tinyshop/internal/domain"
)

// MemoryStore keeps products in process memory.
// It backs tests and local runs that need no database.
type MemoryStore struct {
	mu      sync.Mutex
	rows    map[int64]*domain.Product
	nextID  int64
	failure error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[int64]*domain.Product)}
}

// Factory returns a Factory opening contexts on this store
func (s *MemoryStore) Factory() Factory {
	return func() ProductContext {
		return s.Open()
	}
}

// Open creates a persistence context bound to the store
func (s *MemoryStore) Open() ProductContext {
	return &memoryProductContext{store: s, unitOfWork: newUnitOfWork()}
}

// SetFailure makes every subsequent operation return err, simulating an
// unreachable store. A nil err restores normal operation.
func (s *MemoryStore) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Len returns the number of stored products
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type memoryProductContext struct {
	store *MemoryStore
	unitOfWork
}

func (c *memoryProductContext) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return nil, s.failure
	}
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c.track(row.Clone()), nil
}

func (c *memoryProductContext) ListAll(_ context.Context) ([]*domain.Product, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return nil, s.failure
	}
	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.track(s.rows[id].Clone()))
	}
	return out, nil
}

func (c *memoryProductContext) Add(p *domain.Product) {
	c.stageAdd(p)
}

func (c *memoryProductContext) Remove(p *domain.Product) {
	c.stageRemove(p)
}

func (c *memoryProductContext) SaveChanges(_ context.Context) error {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	for _, p := range c.added {
		s.nextID++
		p.ID = s.nextID
		s.rows[p.ID] = p.Clone()
	}
	for _, p := range c.modified() {
		if _, ok := s.rows[p.ID]; ok {
			s.rows[p.ID] = p.Clone()
		}
	}
	for _, id := range c.removed {
		delete(s.rows, id)
	}
	c.accept()
	return nil
}
