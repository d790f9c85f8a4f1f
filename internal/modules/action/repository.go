package action

import "context"

// AnnouncementRepository is the store for announcements, keyed by title.
// Missing titles return apperr.ErrNotFound and a taken title returns
// apperr.ErrConflict, on Create as well as on a renaming Update.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	GetByTitle(ctx context.Context, title string) (*Announcement, error)
	List(ctx context.Context) ([]*Announcement, error)
	Update(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id string) error
}

// ArticleRepository is the store for articles, keyed by id.
type ArticleRepository interface {
	Create(ctx context.Context, a *Article) error
	GetByID(ctx context.Context, id string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id string) error
}
