package productiondata

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/memstore"
)

type memoryRepo struct {
	store *memstore.Store[Record]
}

func NewMemoryRepository() Repository {
	return &memoryRepo{store: memstore.New(func(r Record) string { return r.ID })}
}

func (r *memoryRepo) Create(ctx context.Context, rec *Record) error {
	return r.store.Insert(ctx, clone(*rec))
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*Record, error) {
	rec, err := r.store.Get(ctx, id)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c := clone(rec)
	return &c, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Record, error) {
	all, err := r.store.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Record, len(all))
	for i := range all {
		c := clone(all[i])
		out[i] = &c
	}
	return out, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); errors.Is(err, memstore.ErrNotFound) {
		return apperr.ErrNotFound
	} else if err != nil {
		return err
	}
	return nil
}

func clone(r Record) Record {
	r.Data = append(json.RawMessage(nil), r.Data...)
	return r
}
