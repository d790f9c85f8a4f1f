package productiondata

import "context"

// Repository defines data access for production data records. Unknown ids
// return apperr.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
	Delete(ctx context.Context, id string) error
}
