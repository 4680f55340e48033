// Package store mediates all reads and writes of catalog products.
//
// A ProductContext is a short-lived unit of work: reads go straight to the
// backing store, while Add, Remove and changes made to loaded products are
// staged and committed together by SaveChanges.
package store

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/talkincode/tinyshop/internal/domain"
)

// ErrNotFound is returned by FindByID when no product has the requested id
var ErrNotFound = errors.New("product not found")

// ProductContext is the persistence context handed to each request
type ProductContext interface {
	// FindByID loads a product by primary key and starts tracking it.
	// Changes made to the returned value are persisted by SaveChanges.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)

	// ListAll returns every stored product ordered by id
	ListAll(ctx context.Context) ([]*domain.Product, error)

	// Add stages a new product; its ID is assigned on commit
	Add(p *domain.Product)

	// Remove stages deletion of an existing product
	Remove(p *domain.Product)

	// SaveChanges commits all staged work as a single unit
	SaveChanges(ctx context.Context) error
}

// Factory opens a fresh ProductContext
type Factory func() ProductContext

type trackedProduct struct {
	current  *domain.Product
	snapshot *domain.Product
}

// unitOfWork holds the staging state shared by the store implementations
type unitOfWork struct {
	tracked map[int64]*trackedProduct
	added   []*domain.Product
	removed []int64
}

func newUnitOfWork() unitOfWork {
	return unitOfWork{tracked: make(map[int64]*trackedProduct)}
}

// track registers a loaded product. An already tracked id keeps its
// current instance so pending edits are not lost.
func (u *unitOfWork) track(p *domain.Product) *domain.Product {
	if t, ok := u.tracked[p.ID]; ok {
		return t.current
	}
	u.tracked[p.ID] = &trackedProduct{current: p, snapshot: p.Clone()}
	return p
}

func (u *unitOfWork) stageAdd(p *domain.Product) {
	if p == nil {
		return
	}
	for _, a := range u.added {
		if a == p {
			return
		}
	}
	u.added = append(u.added, p)
}

func (u *unitOfWork) stageRemove(p *domain.Product) {
	if p == nil {
		return
	}
	for i, a := range u.added {
		if a == p {
			u.added = append(u.added[:i], u.added[i+1:]...)
			return
		}
	}
	if p.ID == 0 || u.isRemoved(p.ID) {
		return
	}
	u.removed = append(u.removed, p.ID)
}

func (u *unitOfWork) isRemoved(id int64) bool {
	for _, r := range u.removed {
		if r == id {
			return true
		}
	}
	return false
}

// modified returns tracked products whose values differ from the loaded snapshot
func (u *unitOfWork) modified() []*domain.Product {
	var out []*domain.Product
	for id, t := range u.tracked {
		if u.isRemoved(id) || t.current.Equal(t.snapshot) {
			continue
		}
		out = append(out, t.current)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// accept is called after a successful commit
func (u *unitOfWork) accept() {
	for _, id := range u.removed {
		delete(u.tracked, id)
	}
	for _, t := range u.tracked {
		t.snapshot = t.current.Clone()
	}
	for _, p := range u.added {
		u.tracked[p.ID] = &trackedProduct{current: p, snapshot: p.Clone()}
	}
	u.added = nil
	u.removed = nil
}

// addedIDs records the caller supplied ids so a failed commit can restore them
func (u *unitOfWork) addedIDs() []int64 {
	ids := make([]int64, len(u.added))
	for i, p := range u.added {
		ids[i] = p.ID
	}
	return ids
}

func (u *unitOfWork) restoreAddedIDs(ids []int64) {
	for i, p := range u.added {
		p.ID = ids[i]
	}
}
