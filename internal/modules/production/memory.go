package production

import (
	"context"
	"errors"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/memstore"
)

type memoryRepo struct {
	store *memstore.Store[Production]
}

// NewMemoryRepository keeps productions in memory with a unique title index.
func NewMemoryRepository() Repository {
	return &memoryRepo{
		store: memstore.New(
			func(p Production) string { return p.ID },
			memstore.Unique(func(p Production) string { return p.Title }),
		),
	}
}

// clone detaches the member list so callers never share it with the store.
func clone(p Production) *Production {
	p.ListOfProductions = append([]string{}, p.ListOfProductions...)
	return &p
}

func (r *memoryRepo) Create(ctx context.Context, p *Production) error {
	return storeError(r.store.Insert(ctx, *clone(*p)))
}

func (r *memoryRepo) GetByTitle(ctx context.Context, title string) (*Production, error) {
	p, err := r.store.GetUnique(ctx, title)
	if err != nil {
		return nil, storeError(err)
	}
	return clone(p), nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Production, error) {
	all, err := r.store.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Production, len(all))
	for i, p := range all {
		out[i] = clone(p)
	}
	return out, nil
}

func (r *memoryRepo) Update(ctx context.Context, p *Production) error {
	return storeError(r.store.Replace(ctx, *clone(*p)))
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	return storeError(r.store.Delete(ctx, id))
}

func storeError(err error) error {
	switch {
	case errors.Is(err, memstore.ErrNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, memstore.ErrDuplicate):
		return apperr.ErrConflict
	default:
		return err
	}
}
