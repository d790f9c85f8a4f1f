package action

import (
	"context"
	"errors"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/memstore"
)

// storeError maps memstore errors onto the repository contract.
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

func pointers[V any](vs []V) []*V {
	out := make([]*V, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

type memoryAnnouncementRepo struct {
	store *memstore.Store[Announcement]
}

// NewMemoryAnnouncementRepository keeps announcements in memory with a unique
// title index.
func NewMemoryAnnouncementRepository() AnnouncementRepository {
	return &memoryAnnouncementRepo{
		store: memstore.New(
			func(a Announcement) string { return a.ID },
			memstore.Unique(func(a Announcement) string { return a.Title }),
		),
	}
}

func (r *memoryAnnouncementRepo) Create(ctx context.Context, a *Announcement) error {
	return storeError(r.store.Insert(ctx, *a))
}

func (r *memoryAnnouncementRepo) GetByTitle(ctx context.Context, title string) (*Announcement, error) {
	a, err := r.store.GetUnique(ctx, title)
	if err != nil {
		return nil, storeError(err)
	}
	return &a, nil
}

func (r *memoryAnnouncementRepo) List(ctx context.Context) ([]*Announcement, error) {
	all, err := r.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return pointers(all), nil
}

func (r *memoryAnnouncementRepo) Update(ctx context.Context, a *Announcement) error {
	return storeError(r.store.Replace(ctx, *a))
}

func (r *memoryAnnouncementRepo) Delete(ctx context.Context, id string) error {
	return storeError(r.store.Delete(ctx, id))
}

type memoryArticleRepo struct {
	store *memstore.Store[Article]
}

func NewMemoryArticleRepository() ArticleRepository {
	return &memoryArticleRepo{store: memstore.New(func(a Article) string { return a.ID })}
}

func (r *memoryArticleRepo) Create(ctx context.Context, a *Article) error {
	return storeError(r.store.Insert(ctx, *a))
}

func (r *memoryArticleRepo) GetByID(ctx context.Context, id string) (*Article, error) {
	a, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return &a, nil
}

func (r *memoryArticleRepo) List(ctx context.Context) ([]*Article, error) {
	all, err := r.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return pointers(all), nil
}

func (r *memoryArticleRepo) Update(ctx context.Context, a *Article) error {
	return storeError(r.store.Replace(ctx, *a))
}

func (r *memoryArticleRepo) Delete(ctx context.Context, id string) error {
	return storeError(r.store.Delete(ctx, id))
}
